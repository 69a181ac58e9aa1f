package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jaldrishti/internal/config"
	"jaldrishti/internal/logging"
	"jaldrishti/internal/models"
	"jaldrishti/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "jaldrishti",
	Short: "Jaldrishti water hazard reporting web shell",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	RunE:  runRoutes,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// One auth state for the whole process, handed to the shell through middleware
	srv, err := server.New(server.Options{
		Config: cfg,
		Logger: logger,
		Auth:   models.NewAuthState(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info("shutdown complete", zap.String("addr", cfg.Addr()))
	return nil
}

func runRoutes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
		cfg = config.Default()
	}

	srv, err := server.New(server.Options{Config: cfg})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tTITLE")
	for _, r := range srv.Routes.Routes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.Name, r.Title)
	}
	fallback := srv.Routes.Fallback()
	fmt.Fprintf(w, "*\t%s\t%s\n", fallback.Name, fallback.Title)
	return w.Flush()
}

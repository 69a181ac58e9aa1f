// Package server wires configuration, handlers, the route table and the
// shell into an echo instance.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"jaldrishti/internal/carousel"
	"jaldrishti/internal/config"
	"jaldrishti/internal/handlers"
	"jaldrishti/internal/middleware"
	"jaldrishti/internal/models"
	"jaldrishti/internal/router"
	"jaldrishti/internal/services"
	"jaldrishti/internal/shell"
	"jaldrishti/web/templates/shared"
)

// Options are the collaborators of the server. Nil fields get defaults.
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	Auth       *models.AuthState
	Sink       services.DiagnosticSink
	Subscriber services.NewsletterSubscriber
	Carousel   *carousel.Carousel
	Now        func() time.Time
}

// Server bundles the echo instance with the route table it serves
type Server struct {
	Echo   *echo.Echo
	Routes *router.Table
	cfg    *config.Config
	logger *zap.Logger

	// cancel ends the base context of every request, including open streams
	cancel context.CancelFunc
}

// New builds the server. It fails only on invalid static configuration.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Auth == nil {
		opts.Auth = models.NewAuthState()
	}
	if opts.Sink == nil {
		opts.Sink = services.NewLogSink(opts.Logger)
	}
	if opts.Subscriber == nil {
		opts.Subscriber = services.NewNoopSubscriber(opts.Logger)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Carousel == nil {
		c, err := carousel.New(carousel.DefaultSlides(), opts.Config.CarouselInterval)
		if err != nil {
			return nil, fmt.Errorf("failed to create carousel: %w", err)
		}
		opts.Carousel = c
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	homeHandler := handlers.NewHomeHandler(opts.Carousel, opts.Now(), opts.Now, opts.Logger)
	dashboardHandler := handlers.NewDashboardHandler()
	reportHandler := handlers.NewReportHandler()
	mapHandler := handlers.NewMapHandler()

	table, err := router.Default(router.Views{
		Home:      homeHandler.Home,
		Dashboard: dashboardHandler.Dashboard,
		Report:    reportHandler.Report,
		Map:       mapHandler.Map,
		Login:     handlers.LoginPage,
		Signup:    handlers.SignupPage,
		NotFound:  handlers.NotFound,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build route table: %w", err)
	}

	sh := shell.New(table, opts.Now)
	authHandler := handlers.NewAuthHandler(opts.Sink, sh, opts.Logger)
	newsletterHandler := handlers.NewNewsletterHandler(opts.Subscriber, opts.Logger)

	e.HTTPErrorHandler = middleware.CustomErrorHandler(sh, opts.Logger, !opts.Config.IsProduction())

	// Middleware
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomw.Recover())
	e.Use(middleware.InjectAuth(opts.Auth))

	// Static file serving
	e.Static("/static", opts.Config.StaticDir)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Views
	for _, r := range table.Routes() {
		e.GET(r.Path, sh.Serve)
	}

	// Form posts
	e.POST(router.PathLogin, authHandler.HandleLogin)
	e.POST(router.PathSignup, authHandler.HandleSignup)
	e.POST(shared.NewsletterURL, newsletterHandler.Subscribe)

	e.GET(handlers.CarouselStreamPath, homeHandler.Stream)

	baseCtx, cancel := context.WithCancel(context.Background())
	e.Server.BaseContext = func(net.Listener) context.Context { return baseCtx }

	return &Server{Echo: e, Routes: table, cfg: opts.Config, logger: opts.Logger, cancel: cancel}, nil
}

// Start serves until the listener fails. http.ErrServerClosed is not an error.
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.cfg.Addr()), zap.String("environment", s.cfg.Environment))
	if err := s.Echo.Start(s.cfg.Addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests up to the configured timeout.
// Request contexts are cancelled first so carousel streams, which never end on their own, return.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.Echo.Shutdown(ctx)
}

// Package shell composes the navigation chrome, the routed view and the
// auth context into complete pages.
package shell

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"jaldrishti/internal/middleware"
	"jaldrishti/internal/models"
	"jaldrishti/internal/router"
	"jaldrishti/web/templates/pages"
)

// AuthPaths are the paths rendered without Navbar and Footer
var AuthPaths = map[string]struct{}{
	router.PathLogin:  {},
	router.PathSignup: {},
}

// IsAuthPage reports whether path is one of authPaths
func IsAuthPage(path string, authPaths map[string]struct{}) bool {
	_, ok := authPaths[path]
	return ok
}

// ShowChrome reports whether Navbar and Footer belong on path
func ShowChrome(path string) bool {
	return !IsAuthPage(path, AuthPaths)
}

// Shell renders exactly one view per request inside the shared layout
type Shell struct {
	table *router.Table
	now   func() time.Time
}

// New creates a shell over table. now supplies the footer year; nil means time.Now.
func New(table *router.Table, now func() time.Time) *Shell {
	if now == nil {
		now = time.Now
	}
	return &Shell{table: table, now: now}
}

// Serve resolves the request path and renders its view.
// Unknown paths yield echo.ErrNotFound for the error handler to render.
func (s *Shell) Serve(c echo.Context) error {
	route, ok := s.table.Resolve(c.Request().URL.Path)
	if !ok {
		return echo.ErrNotFound
	}

	content, err := route.View(c)
	if err != nil {
		return err
	}
	return s.Render(c, http.StatusOK, route.Title, content)
}

// NotFound renders the fallback view with status 404
func (s *Shell) NotFound(c echo.Context) error {
	fallback := s.table.Fallback()
	content, err := fallback.View(c)
	if err != nil {
		return err
	}
	return s.Render(c, http.StatusNotFound, fallback.Title, content)
}

// Render wraps content in the layout for the current path and writes it with status
func (s *Shell) Render(c echo.Context, status int, title string, content templ.Component) error {
	path := c.Request().URL.Path
	props := pages.LayoutProps{
		Title:       title,
		CurrentPath: path,
		ShowChrome:  ShowChrome(path),
		Year:        s.now().Year(),
		Auth:        authFromContext(c),
		Content:     content,
	}

	var buf bytes.Buffer
	if err := pages.Layout(props).Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}

func authFromContext(c echo.Context) *models.AuthState {
	if auth := middleware.GetAuth(c); auth != nil {
		return auth
	}
	return models.NewAuthState()
}

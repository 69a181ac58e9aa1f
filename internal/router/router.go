// Package router holds the static table mapping request paths to views.
package router

import (
	"errors"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Paths served by the shell
const (
	PathHome      = "/"
	PathDashboard = "/dashboard"
	PathReport    = "/report"
	PathMap       = "/map"
	PathLogin     = "/login"
	PathSignup    = "/signup"
)

// ViewFunc builds the component for one request
type ViewFunc func(c echo.Context) (templ.Component, error)

// Route binds an exact path to a view
type Route struct {
	Path  string
	Name  string
	Title string
	View  ViewFunc
}

// Table is an ordered, immutable list of routes with a fallback for misses
type Table struct {
	routes   []Route
	fallback Route
}

var ErrNoFallback = errors.New("router: fallback route needs a view")

// New validates routes and builds a table. Paths must be non-empty and unique.
func New(fallback Route, routes ...Route) (*Table, error) {
	if fallback.View == nil {
		return nil, ErrNoFallback
	}

	seen := make(map[string]struct{}, len(routes))
	for i, r := range routes {
		if r.Path == "" {
			return nil, fmt.Errorf("router: route %d (%s) has an empty path", i, r.Name)
		}
		if r.View == nil {
			return nil, fmt.Errorf("router: route %s has no view", r.Path)
		}
		if _, dup := seen[r.Path]; dup {
			return nil, fmt.Errorf("router: duplicate route %s", r.Path)
		}
		seen[r.Path] = struct{}{}
	}

	t := &Table{routes: make([]Route, len(routes)), fallback: fallback}
	copy(t.routes, routes)
	return t, nil
}

// Views are the page views of the application
type Views struct {
	Home      ViewFunc
	Dashboard ViewFunc
	Report    ViewFunc
	Map       ViewFunc
	Login     ViewFunc
	Signup    ViewFunc
	NotFound  ViewFunc
}

// Default builds the application's route table from its views
func Default(v Views) (*Table, error) {
	return New(
		Route{Name: "not_found", Title: "Page Not Found", View: v.NotFound},
		Route{Path: PathHome, Name: "home", Title: "Home", View: v.Home},
		Route{Path: PathDashboard, Name: "dashboard", Title: "Dashboard", View: v.Dashboard},
		Route{Path: PathReport, Name: "report", Title: "Report Hazard", View: v.Report},
		Route{Path: PathMap, Name: "map", Title: "Hazard Map", View: v.Map},
		Route{Path: PathLogin, Name: "login", Title: "Login", View: v.Login},
		Route{Path: PathSignup, Name: "signup", Title: "Sign up", View: v.Signup},
	)
}

// Resolve returns the first route whose path equals path exactly
func (t *Table) Resolve(path string) (Route, bool) {
	for _, r := range t.routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Fallback returns the route rendered when Resolve finds nothing
func (t *Table) Fallback() Route {
	return t.fallback
}

// Routes returns a copy of the routes in declaration order
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

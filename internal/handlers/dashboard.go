package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"jaldrishti/web/templates/pages"
)

// DefaultStats are the fixed figures shown until a metrics source exists
var DefaultStats = []pages.Stat{
	{Label: "Total Reports", Value: "156"},
	{Label: "Active Hazards", Value: "42"},
	{Label: "Resolved Issues", Value: "114"},
	{Label: "Response Time", Value: "24h"},
}

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	stats []pages.Stat
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{stats: DefaultStats}
}

// Dashboard builds the dashboard view
func (h *DashboardHandler) Dashboard(c echo.Context) (templ.Component, error) {
	return pages.Dashboard(pages.DashboardProps{Stats: h.stats}), nil
}

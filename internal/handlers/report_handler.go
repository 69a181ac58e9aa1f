package handlers

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"jaldrishti/internal/models"
	"jaldrishti/internal/services"
	"jaldrishti/web/templates/pages"
)

// ReportHandler serves the hazard report form. The form has no submit
// handler of its own: the browser's default GET submission lands back here
// and the entered values are shown again.
type ReportHandler struct {
	analyze func(string) services.HazardAssessment
}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{analyze: services.AnalyzeText}
}

// Report builds the report form from the query string
func (h *ReportHandler) Report(c echo.Context) (templ.Component, error) {
	form := models.ReportForm{}.
		WithLocation(c.QueryParam("location")).
		WithHazardType(models.ParseHazardType(c.QueryParam("hazardType"))).
		WithDescription(c.QueryParam("description")).
		WithImage(c.QueryParam("image"))

	props := pages.ReportProps{Form: form}
	if strings.TrimSpace(form.Description) != "" {
		assessment := h.analyze(form.Description)
		props.Assessment = &assessment
	}

	return pages.Report(props), nil
}

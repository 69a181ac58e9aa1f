package pages

import (
	"github.com/a-h/templ"

	"jaldrishti/internal/models"
	"jaldrishti/internal/services"
	"jaldrishti/web/templates"
)

type ReportProps struct {
	Form        models.ReportForm
	HazardTypes []models.HazardType
	// Assessment is nil until a description has been entered
	Assessment *services.HazardAssessment
}

func Report(props ReportProps) templ.Component {
	if props.HazardTypes == nil {
		props.HazardTypes = models.HazardTypes
	}
	return templates.Component("report", props)
}

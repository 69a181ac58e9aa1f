package pages

import (
	"github.com/a-h/templ"

	"jaldrishti/internal/models"
	"jaldrishti/web/templates"
)

type MapProps struct {
	Legend []models.HazardType
}

// Map renders the map placeholder and its legend. The map itself is not implemented.
func Map(props MapProps) templ.Component {
	if props.Legend == nil {
		props.Legend = models.HazardTypes
	}
	return templates.Component("map", props)
}

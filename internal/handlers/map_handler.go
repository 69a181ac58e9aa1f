package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"jaldrishti/internal/models"
	"jaldrishti/web/templates/pages"
)

type MapHandler struct{}

func NewMapHandler() *MapHandler {
	return &MapHandler{}
}

// Map builds the hazard map placeholder
func (h *MapHandler) Map(c echo.Context) (templ.Component, error) {
	return pages.Map(pages.MapProps{Legend: models.HazardTypes}), nil
}

package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"jaldrishti/web/templates/pages"
)

// NotFound builds the view for paths missing from the route table
func NotFound(c echo.Context) (templ.Component, error) {
	return pages.NotFound(pages.NotFoundProps{Path: c.Request().URL.Path}), nil
}

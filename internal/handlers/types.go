package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// PageRenderer wraps a component in the application layout and writes it.
// Handlers that answer form posts render through it so the chrome rules apply.
type PageRenderer interface {
	Render(c echo.Context, status int, title string, content templ.Component) error
}

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}

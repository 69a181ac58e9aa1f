package middleware

import (
	"github.com/labstack/echo/v4"

	"jaldrishti/internal/models"
)

const authContextKey = "auth"

// InjectAuth returns a middleware that makes the shared auth state available
// to every handler. The state is read-only from here on.
func InjectAuth(state *models.AuthState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(authContextKey, state)

			// Prefills the email on the login and signup forms
			if state != nil && state.LoggedIn {
				c.Set("userEmail", state.Email)
			}

			return next(c)
		}
	}
}

// GetAuth returns the auth state set by InjectAuth, or nil
func GetAuth(c echo.Context) *models.AuthState {
	state, ok := c.Get(authContextKey).(*models.AuthState)
	if !ok {
		return nil
	}
	return state
}

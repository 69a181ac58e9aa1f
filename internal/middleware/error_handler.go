package middleware

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jaldrishti/web/templates/pages"
)

// PageRenderer renders content inside the application layout
type PageRenderer interface {
	Render(c echo.Context, status int, title string, content templ.Component) error
	NotFound(c echo.Context) error
}

// CustomErrorHandler creates an echo error handler that renders errors as pages.
// Unknown paths get the not-found view; the layout decides on chrome by path.
// With showDetails set, server errors display the underlying error text.
func CustomErrorHandler(renderer PageRenderer, logger *zap.Logger, showDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorTitle := "Internal Server Error"
		errorMessage := ""

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code

			if msg, ok := he.Message.(string); ok && msg != "" && msg != http.StatusText(code) {
				errorMessage = msg
			}

			switch code {
			case http.StatusNotFound:
				errorTitle = "Page Not Found"
			case http.StatusMethodNotAllowed:
				errorTitle = "Method Not Allowed"
				if errorMessage == "" {
					errorMessage = "This page does not accept that kind of request."
				}
			case http.StatusBadRequest:
				errorTitle = "Bad Request"
				if errorMessage == "" {
					errorMessage = "The request could not be processed."
				}
			default:
				if code < http.StatusInternalServerError {
					errorTitle = http.StatusText(code)
				}
			}
		}
		if code >= http.StatusInternalServerError && showDetails {
			errorMessage = err.Error()
		}
		if errorMessage == "" {
			errorMessage = "Something went wrong. Please try again later."
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Request().URL.Path), zap.Error(err))
		} else {
			logger.Debug("request rejected", zap.String("path", c.Request().URL.Path), zap.Int("status", code))
		}

		var renderErr error
		if code == http.StatusNotFound {
			renderErr = renderer.NotFound(c)
		} else {
			renderErr = renderer.Render(c, code, errorTitle, pages.ErrorPage(pages.ErrorPageProps{
				ErrorTitle:   errorTitle,
				ErrorMessage: errorMessage,
			}))
		}

		if renderErr != nil {
			// Fallback to plain text if the page fails
			logger.Error("failed to render error page", zap.Error(renderErr))
			_ = c.String(code, errorMessage)
		}
	}
}

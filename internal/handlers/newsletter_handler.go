package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jaldrishti/internal/services"
)

type NewsletterHandler struct {
	subscriber services.NewsletterSubscriber
	logger     *zap.Logger
}

func NewNewsletterHandler(subscriber services.NewsletterSubscriber, logger *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{subscriber: subscriber, logger: logger}
}

// Subscribe hands the footer email to the subscriber and answers 204, which
// leaves the browser on the page it was on.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	if err := h.subscriber.Subscribe(c.Request().Context(), c.FormValue("email")); err != nil {
		h.logger.Warn("newsletter subscription failed", zap.Error(err))
	}
	return c.NoContent(http.StatusNoContent)
}

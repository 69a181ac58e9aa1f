package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jaldrishti/internal/carousel"
	"jaldrishti/web/templates/pages"
)

// CarouselStreamPath serves the slide change events for the home page
const CarouselStreamPath = "/carousel/stream"

// HomeHandler serves the home page and its carousel stream
type HomeHandler struct {
	carousel  *carousel.Carousel
	startedAt time.Time
	now       func() time.Time
	logger    *zap.Logger
}

// NewHomeHandler creates a HomeHandler. Slide positions are counted from
// startedAt so every visitor sees the same slide at the same moment.
func NewHomeHandler(c *carousel.Carousel, startedAt time.Time, now func() time.Time, logger *zap.Logger) *HomeHandler {
	if now == nil {
		now = time.Now
	}
	return &HomeHandler{carousel: c, startedAt: startedAt, now: now, logger: logger}
}

// Home builds the landing view with the current slide active
func (h *HomeHandler) Home(c echo.Context) (templ.Component, error) {
	return pages.Home(pages.HomeProps{
		Slides:    h.carousel.Slides(),
		Active:    h.currentSlide(),
		Interval:  h.carousel.Interval(),
		StreamURL: CarouselStreamPath,
	}), nil
}

// Stream pushes the active slide index as server-sent events until the client goes away
func (h *HomeHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	start := h.currentSlide()
	if err := writeSlideEvent(res, start); err != nil {
		return nil
	}
	res.Flush()

	err := h.carousel.Run(c.Request().Context(), start, func(index int) error {
		if err := writeSlideEvent(res, index); err != nil {
			return err
		}
		res.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		h.logger.Debug("carousel stream ended", zap.Error(err))
	}
	return nil
}

func (h *HomeHandler) currentSlide() int {
	return h.carousel.IndexAt(h.now().Sub(h.startedAt))
}

func writeSlideEvent(w io.Writer, index int) error {
	_, err := fmt.Fprintf(w, "event: slide\ndata: %d\n\n", index)
	return err
}

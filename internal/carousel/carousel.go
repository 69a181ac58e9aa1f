// Package carousel drives the auto-advancing slide show on the home page.
package carousel

import (
	"context"
	"errors"
	"time"
)

// DefaultInterval is the time each slide stays on screen
const DefaultInterval = 3000 * time.Millisecond

var (
	ErrNoSlides        = errors.New("carousel: at least one slide is required")
	ErrInvalidInterval = errors.New("carousel: interval must be positive")
)

// Slide is one panel of the carousel
type Slide struct {
	Title   string
	Caption string
}

// DefaultSlides returns the slides shown on the home page
func DefaultSlides() []Slide {
	return []Slide{
		{
			Title:   "Report hazards as they happen",
			Caption: "Citizens flag flooding, water logging, contamination and leaks from their phones.",
		},
		{
			Title:   "See the risk on one dashboard",
			Caption: "Analysts track active hazards and response times across the coast.",
		},
		{
			Title:   "Keep coastal communities informed",
			Caption: "Alerts and insights reach the people who need them first.",
		},
	}
}

// Carousel cycles through a fixed list of slides at a fixed interval.
// It has no pause control; a run ends only when its context is cancelled.
type Carousel struct {
	slides   []Slide
	interval time.Duration
}

// New creates a carousel over slides
func New(slides []Slide, interval time.Duration) (*Carousel, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	s := make([]Slide, len(slides))
	copy(s, slides)
	return &Carousel{slides: s, interval: interval}, nil
}

// Slides returns a copy of the slides in display order
func (c *Carousel) Slides() []Slide {
	s := make([]Slide, len(c.slides))
	copy(s, c.slides)
	return s
}

func (c *Carousel) Interval() time.Duration {
	return c.interval
}

// Next returns the index after i, wrapping to the first slide after the last
func (c *Carousel) Next(i int) int {
	return (c.normalize(i) + 1) % len(c.slides)
}

// IndexAt returns the slide on screen after elapsed time from the first slide
func (c *Carousel) IndexAt(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	return int(elapsed/c.interval) % len(c.slides)
}

// Run advances from slide from once per interval, calling advance with each
// new index. It returns ctx.Err() when the context ends, or the first error
// returned by advance.
func (c *Carousel) Run(ctx context.Context, from int, advance func(index int) error) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	current := c.normalize(from)
	for {
		select {
		case <-ticker.C:
			current = c.Next(current)
			if err := advance(current); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Carousel) normalize(i int) int {
	n := len(c.slides)
	return ((i % n) + n) % n
}

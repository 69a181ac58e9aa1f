package pages

import (
	"time"

	"github.com/a-h/templ"

	"jaldrishti/internal/carousel"
	"jaldrishti/web/templates"
)

type HomeProps struct {
	Slides    []carousel.Slide
	Active    int
	Interval  time.Duration
	StreamURL string
}

// IntervalMillis is the slide interval handed to the browser
func (p HomeProps) IntervalMillis() int64 {
	return p.Interval.Milliseconds()
}

func Home(props HomeProps) templ.Component {
	return templates.Component("home", props)
}

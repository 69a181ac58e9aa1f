package pages

import (
	"github.com/a-h/templ"

	"jaldrishti/web/templates"
)

// Stat is one dashboard card
type Stat struct {
	Label string
	Value string
}

type DashboardProps struct {
	Stats []Stat
}

func Dashboard(props DashboardProps) templ.Component {
	return templates.Component("dashboard", props)
}

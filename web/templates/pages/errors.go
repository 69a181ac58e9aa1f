package pages

import (
	"github.com/a-h/templ"

	"jaldrishti/web/templates"
)

type NotFoundProps struct {
	Path string
}

func NotFound(props NotFoundProps) templ.Component {
	return templates.Component("not_found", props)
}

type ErrorPageProps struct {
	ErrorTitle   string
	ErrorMessage string
}

func ErrorPage(props ErrorPageProps) templ.Component {
	return templates.Component("error", props)
}

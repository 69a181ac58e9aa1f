// Package templates embeds the HTML markup and exposes it as templ components.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed layouts/*.html partials/*.html pages/*.html
var files embed.FS

// set holds every named block from layouts, partials and pages.
// Block names are unique across files, so one set serves all components.
var set = template.Must(template.New("jaldrishti").ParseFS(files,
	"layouts/*.html",
	"partials/*.html",
	"pages/*.html",
))

// Component renders the named block with data
func Component(name string, data interface{}) templ.Component {
	tmpl := set.Lookup(name)
	if tmpl == nil {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return fmt.Errorf("template %q not found", name)
		})
	}
	return templ.FromGoHTML(tmpl, data)
}

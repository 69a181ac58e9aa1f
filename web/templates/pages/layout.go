package pages

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"jaldrishti/internal/models"
	"jaldrishti/web/templates"
	"jaldrishti/web/templates/shared"
)

// LayoutProps describes one full document
type LayoutProps struct {
	Title       string
	CurrentPath string
	ShowChrome  bool
	Year        int
	Auth        *models.AuthState
	Content     templ.Component
}

type layoutData struct {
	Title      string
	ShowChrome bool
	Navbar     template.HTML
	Content    template.HTML
	Footer     template.HTML
}

// Layout wraps Content in the document shell. Navbar and Footer are only
// rendered when ShowChrome is set.
func Layout(props LayoutProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		data := layoutData{
			Title:      props.Title,
			ShowChrome: props.ShowChrome,
		}

		var err error
		if props.ShowChrome {
			if data.Navbar, err = templ.ToGoHTML(ctx, shared.Navbar(props.CurrentPath, props.Auth)); err != nil {
				return fmt.Errorf("failed to render navbar: %w", err)
			}
			if data.Footer, err = templ.ToGoHTML(ctx, shared.Footer(props.Year)); err != nil {
				return fmt.Errorf("failed to render footer: %w", err)
			}
		}

		if props.Content != nil {
			if data.Content, err = templ.ToGoHTML(ctx, props.Content); err != nil {
				return fmt.Errorf("failed to render content: %w", err)
			}
		}

		return templates.Component("base", data).Render(ctx, w)
	})
}

package shared

import (
	"github.com/a-h/templ"

	"jaldrishti/internal/models"
	"jaldrishti/web/templates"
)

// NavLink is one entry of the navigation bar or footer
type NavLink struct {
	Title string
	URL   string
}

// LoginURL is where the navbar's Login control leads, whatever the session state
const LoginURL = "/login"

// NavLinks are the primary navigation entries in display order
var NavLinks = []NavLink{
	{Title: "Home", URL: "/"},
	{Title: "Dashboard", URL: "/dashboard"},
	{Title: "Report", URL: "/report"},
	{Title: "Map", URL: "/map"},
}

type NavbarProps struct {
	CurrentPath string
	Auth        *models.AuthState
	Links       []NavLink
	LoginURL    string
}

// Navbar renders the top navigation bar
func Navbar(currentPath string, auth *models.AuthState) templ.Component {
	return templates.Component("navbar", NavbarProps{
		CurrentPath: currentPath,
		Auth:        auth,
		Links:       NavLinks,
		LoginURL:    LoginURL,
	})
}

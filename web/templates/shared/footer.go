package shared

import (
	"github.com/a-h/templ"

	"jaldrishti/web/templates"
)

// NewsletterURL receives the footer's email capture form
const NewsletterURL = "/newsletter"

type FooterSection struct {
	Title string
	Links []NavLink
}

// FooterSections are the static link groups of the footer
var FooterSections = []FooterSection{
	{
		Title: "Information",
		Links: []NavLink{
			{Title: "About Us", URL: "/about"},
			{Title: "Privacy Policy", URL: "/privacy"},
			{Title: "Terms & Conditions", URL: "/terms"},
			{Title: "Contact Us", URL: "/contact"},
		},
	},
	{
		Title: "Services",
		Links: []NavLink{
			{Title: "Report Hazard", URL: "/report"},
			{Title: "View Analytics", URL: "/dashboard"},
			{Title: "Hazard Map", URL: "/map"},
			{Title: "Support", URL: "/support"},
		},
	},
	{
		Title: "Resources",
		Links: []NavLink{
			{Title: "Documentation", URL: "/documentation"},
			{Title: "API Access", URL: "/api"},
			{Title: "Developer Info", URL: "/developers"},
			{Title: "Guidelines", URL: "/guidelines"},
		},
	},
	{
		Title: "Jaldrishti",
		Links: []NavLink{
			{Title: "Home", URL: "/"},
			{Title: "Features", URL: "/features"},
			{Title: "Pricing", URL: "/pricing"},
			{Title: "Download App", URL: "/download"},
		},
	},
}

type FooterProps struct {
	Year          int
	Sections      []FooterSection
	NewsletterURL string
}

// Footer renders the page footer with the newsletter form
func Footer(year int) templ.Component {
	return templates.Component("footer", FooterProps{
		Year:          year,
		Sections:      FooterSections,
		NewsletterURL: NewsletterURL,
	})
}

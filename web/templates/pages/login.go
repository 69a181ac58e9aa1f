package pages

import (
	"github.com/a-h/templ"

	"jaldrishti/internal/models"
	"jaldrishti/web/templates"
)

// LoginMode selects between the sign in and sign up variants of the form
type LoginMode string

const (
	LoginModeSignIn LoginMode = "login"
	LoginModeSignUp LoginMode = "signup"
)

type LoginProps struct {
	Mode       LoginMode
	Form       models.LoginForm
	Roles      []models.Role
	Error      string
	ErrorField string
}

func (p LoginProps) IsSignup() bool {
	return p.Mode == LoginModeSignUp
}

func (p LoginProps) Heading() string {
	if p.IsSignup() {
		return "Join Jaldrishti"
	}
	return "Welcome to Jaldrishti"
}

func (p LoginProps) Subtitle() string {
	if p.IsSignup() {
		return "Create an account to continue"
	}
	return "Sign in to continue"
}

func (p LoginProps) SubmitLabel() string {
	if p.IsSignup() {
		return "Sign up"
	}
	return "Sign in"
}

// Action is the path the form posts back to
func (p LoginProps) Action() string {
	if p.IsSignup() {
		return "/signup"
	}
	return "/login"
}

func Login(props LoginProps) templ.Component {
	if props.Roles == nil {
		props.Roles = models.Roles
	}
	return templates.Component("login", props)
}

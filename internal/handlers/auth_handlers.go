package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jaldrishti/internal/models"
	"jaldrishti/internal/services"
	"jaldrishti/web/templates/pages"
)

// Diagnostic events recorded for submitted forms
const (
	EventLoginAttempted  = "login_attempted"
	EventSignupAttempted = "signup_attempted"
)

const submissionFailedMessage = "We could not process your request. Please try again."

// AuthHandler serves the login and signup screens. Submissions are recorded
// to the diagnostic sink only; no credentials are checked.
type AuthHandler struct {
	sink     services.DiagnosticSink
	renderer PageRenderer
	logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sink services.DiagnosticSink, renderer PageRenderer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{sink: sink, renderer: renderer, logger: logger}
}

// LoginPage builds the empty login view
func LoginPage(c echo.Context) (templ.Component, error) {
	return pages.Login(pages.LoginProps{Mode: pages.LoginModeSignIn, Form: initialForm(c)}), nil
}

// SignupPage builds the empty signup view
func SignupPage(c echo.Context) (templ.Component, error) {
	return pages.Login(pages.LoginProps{Mode: pages.LoginModeSignUp, Form: initialForm(c)}), nil
}

// HandleLogin applies a role selection or records a sign in attempt
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	return h.handleForm(c, pages.LoginModeSignIn, "Login", EventLoginAttempted)
}

// HandleSignup applies a role selection or records a sign up attempt
func (h *AuthHandler) HandleSignup(c echo.Context) error {
	return h.handleForm(c, pages.LoginModeSignUp, "Sign up", EventSignupAttempted)
}

func (h *AuthHandler) handleForm(c echo.Context, mode pages.LoginMode, title, event string) error {
	form := models.LoginForm{}.
		WithRole(models.ParseRole(c.FormValue("role"))).
		WithEmail(c.FormValue("email")).
		WithPassword(c.FormValue("password"))

	props := pages.LoginProps{Mode: mode}
	status := http.StatusOK

	if selected := c.FormValue("select_role"); selected != "" {
		// A role button was pressed: update the selection and show the form again
		props.Form = form.WithRole(models.ParseRole(selected))
		return h.renderer.Render(c, status, title, pages.Login(props))
	}

	if err := h.submit(c, form, event); err != nil {
		var validationErr *models.ValidationError
		var submissionErr *models.SubmissionError
		switch {
		case errors.As(err, &validationErr):
			status = http.StatusUnprocessableEntity
			props.Error = validationErr.Message
			props.ErrorField = validationErr.Field
		case errors.As(err, &submissionErr):
			h.logger.Error("form submission failed", zap.String("event", event), zap.Error(err))
			status = http.StatusBadGateway
			props.Error = submissionFailedMessage
		default:
			return err
		}
	}

	// Stay on the same page; the password is never echoed back
	props.Form = form.WithPassword("")
	return h.renderer.Render(c, status, title, pages.Login(props))
}

func (h *AuthHandler) submit(c echo.Context, form models.LoginForm, event string) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if err := h.sink.Record(c.Request().Context(), event, form.Attempt()); err != nil {
		return &models.SubmissionError{Op: event, Err: err}
	}
	return nil
}

// initialForm prefills the email of an already signed in user
func initialForm(c echo.Context) models.LoginForm {
	return models.LoginForm{}.WithEmail(getStringFromContext(c, "userEmail"))
}

package models

import "strings"

// Role represents the account role picked on the login screen
type Role string

const (
	RoleNone    Role = ""
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
	RoleAnalyst Role = "analyst"
)

// Roles lists the selectable roles in display order
var Roles = []Role{RoleCitizen, RoleAdmin, RoleAnalyst}

// ParseRole returns the role for a form value. Unknown values map to RoleNone.
func ParseRole(s string) Role {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCitizen, RoleAdmin, RoleAnalyst:
		return r
	}
	return RoleNone
}

// Label returns the button caption for the role
func (r Role) Label() string {
	switch r {
	case RoleCitizen:
		return "Citizen"
	case RoleAdmin:
		return "Admin"
	case RoleAnalyst:
		return "Analyst"
	}
	return ""
}

// LoginForm holds the transient state of the login and signup screens.
// Updates return a new value; the receiver is never modified.
type LoginForm struct {
	Role     Role
	Email    string
	Password string
}

// WithRole selects r. Selecting a role replaces the previous one, it does not toggle.
func (f LoginForm) WithRole(r Role) LoginForm {
	f.Role = r
	return f
}

func (f LoginForm) WithEmail(email string) LoginForm {
	f.Email = email
	return f
}

func (f LoginForm) WithPassword(password string) LoginForm {
	f.Password = password
	return f
}

// Validate checks the fields the markup marks as required
func (f LoginForm) Validate() error {
	if strings.TrimSpace(f.Email) == "" {
		return &ValidationError{Field: "email", Message: "Email is required."}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Message: "Password is required."}
	}
	return nil
}

// LoginAttempt is the diagnostic payload recorded for a submitted form.
// Field order matters: it is the serialised key order.
type LoginAttempt struct {
	Role     Role   `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Attempt builds the diagnostic payload for the current form state
func (f LoginForm) Attempt() LoginAttempt {
	return LoginAttempt{Role: f.Role, Email: f.Email, Password: f.Password}
}

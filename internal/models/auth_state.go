package models

// AuthState is the process-wide authentication context. It is created once
// at startup and handed to every consumer; nothing in the shell writes it.
type AuthState struct {
	LoggedIn bool
	Email    string
	Role     Role
}

// NewAuthState returns the logged-out state
func NewAuthState() *AuthState {
	return &AuthState{}
}

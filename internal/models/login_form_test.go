package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginForm_WithRoleIsSingleSelect(t *testing.T) {
	form := LoginForm{}.WithRole(RoleCitizen).WithRole(RoleAdmin)
	assert.Equal(t, RoleAdmin, form.Role)

	// Selecting the same role again keeps it selected
	form = form.WithRole(RoleAdmin)
	assert.Equal(t, RoleAdmin, form.Role)
}

func TestLoginForm_UpdatesDoNotMutate(t *testing.T) {
	original := LoginForm{Email: "a@b.com"}
	updated := original.WithRole(RoleAnalyst).WithEmail("c@d.com").WithPassword("secret")

	assert.Equal(t, LoginForm{Email: "a@b.com"}, original)
	assert.Equal(t, LoginForm{Role: RoleAnalyst, Email: "c@d.com", Password: "secret"}, updated)
}

func TestLoginForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      LoginForm
		wantField string
	}{
		{name: "complete", form: LoginForm{Email: "a@b.com", Password: "x"}},
		{name: "role is optional", form: LoginForm{Role: RoleNone, Email: "a@b.com", Password: "x"}},
		{name: "missing email", form: LoginForm{Password: "x"}, wantField: "email"},
		{name: "blank email", form: LoginForm{Email: "   ", Password: "x"}, wantField: "email"},
		{name: "missing password", form: LoginForm{Email: "a@b.com"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestLoginForm_AttemptPayload(t *testing.T) {
	form := LoginForm{}.WithEmail("a@b.com").WithPassword("x").WithRole(RoleCitizen)

	data, err := json.Marshal(form.Attempt())
	require.NoError(t, err)
	assert.Equal(t, `{"role":"citizen","email":"a@b.com","password":"x"}`, string(data))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"citizen", RoleCitizen},
		{"Admin", RoleAdmin},
		{" analyst ", RoleAnalyst},
		{"", RoleNone},
		{"superuser", RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.input))
		})
	}
}

func TestSubmissionError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&SubmissionError{Op: "login_attempted", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "login_attempted failed: connection refused", err.Error())
}

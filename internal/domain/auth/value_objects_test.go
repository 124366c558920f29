//go:build unit

package auth_test

import (
	"strings"
	"testing"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	creds, err := auth.NewCredentials("Cashier@Example.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "Cashier@Example.com", creds.Email().Value())
	assert.Equal(t, "x", creds.Password())

	_, err = auth.NewCredentials("not-an-email", "password123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = auth.NewCredentials("cashier@example.com", "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestNewRegistration(t *testing.T) {
	cases := []struct {
		name         string
		first        string
		email        string
		pw           string
		confirmation string
		errIs        error
	}{
		{name: "valid", first: "Casey", email: "casey@example.com", pw: "password123", confirmation: "password123"},
		{name: "mismatch is checked first", first: "", email: "bad", pw: "short", confirmation: "other", errIs: auth.ErrPasswordMismatch},
		{name: "missing first name", first: " ", email: "casey@example.com", pw: "password123", confirmation: "password123", errIs: user.ErrEmptyFirstName},
		{name: "first name too long", first: strings.Repeat("a", user.MaxFirstNameLength+1), email: "casey@example.com", pw: "password123", confirmation: "password123", errIs: user.ErrFirstNameTooLong},
		{name: "invalid email", first: "Casey", email: "casey", pw: "password123", confirmation: "password123", errIs: user.ErrInvalidEmail},
		{name: "7 character password", first: "Casey", email: "casey@example.com", pw: "1234567", confirmation: "1234567", errIs: user.ErrPasswordTooWeak},
		{name: "8 character password", first: "Casey", email: "casey@example.com", pw: "12345678", confirmation: "12345678"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.NewRegistration(tc.first, tc.email, tc.pw, tc.confirmation)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewActivation(t *testing.T) {
	a, err := auth.NewActivation(" MQ ", " abc-123 ")
	require.NoError(t, err)
	assert.Equal(t, "MQ", a.UID())
	assert.Equal(t, "abc-123", a.Token())

	_, err = auth.NewActivation("", "abc")
	assert.ErrorIs(t, err, auth.ErrMissingUID)
	_, err = auth.NewActivation("MQ", "  ")
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestNewPasswordResetConfirm(t *testing.T) {
	p, err := auth.NewPasswordResetConfirm("MQ", "tok", "brand-new-pass", "brand-new-pass")
	require.NoError(t, err)
	assert.Equal(t, "brand-new-pass", p.NewPassword().Value())

	_, err = auth.NewPasswordResetConfirm("MQ", "tok", "brand-new-pass", "brand-new-pas")
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)
	_, err = auth.NewPasswordResetConfirm("MQ", "", "brand-new-pass", "brand-new-pass")
	assert.ErrorIs(t, err, auth.ErrMissingToken)
	_, err = auth.NewPasswordResetConfirm("MQ", "tok", "short", "short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestNewAccountVerification(t *testing.T) {
	_, err := auth.NewAccountVerification("42", "123456")
	assert.NoError(t, err)
	_, err = auth.NewAccountVerification("42", "")
	assert.ErrorIs(t, err, auth.ErrMissingCode)
	_, err = auth.NewAccountVerification("", "123456")
	assert.ErrorIs(t, err, auth.ErrMissingUID)
}

func TestNewSocialLogin(t *testing.T) {
	s, err := auth.NewSocialLogin(" GitHub ", "state", "code")
	require.NoError(t, err)
	assert.Equal(t, "github", s.Provider())

	_, err = auth.NewSocialLogin("myspace", "state", "code")
	assert.ErrorIs(t, err, auth.ErrUnknownProvider)
	_, err = auth.NewSocialLogin("google-oauth2", "", "code")
	assert.ErrorIs(t, err, auth.ErrMissingState)
}

func TestTokenSet(t *testing.T) {
	assert.True(t, auth.TokenSet{}.IsEmpty())
	assert.False(t, auth.TokenSet{Access: "a"}.IsEmpty())
	assert.ElementsMatch(t, []string{auth.KeyAccessToken, auth.KeyRefreshToken, auth.KeyUserID}, auth.CredentialKeys)
}

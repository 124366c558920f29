package auth

import (
	"errors"
	"strings"

	"pos-terminal/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrMissingUID         = errors.New("uid is required")
	ErrMissingToken       = errors.New("token is required")
	ErrMissingCode        = errors.New("verification code is required")
	ErrUnknownProvider    = errors.New("unknown social auth provider")
	ErrMissingState       = errors.New("state and code are required")
)

// Credentials are what the login form submits. Password strength is the account service's
// business, so only presence is checked here.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

type Registration struct {
	firstName user.FirstName
	email     user.Email
	password  user.Password
}

// NewRegistration rejects a confirmation that does not match before anything leaves the terminal.
func NewRegistration(firstName, email, password, rePassword string) (Registration, error) {
	if password != rePassword {
		return Registration{}, ErrPasswordMismatch
	}

	fn, err := user.NewFirstName(firstName)
	if err != nil {
		return Registration{}, err
	}

	em, err := user.NewEmail(email)
	if err != nil {
		return Registration{}, err
	}

	pw, err := user.NewPassword(password)
	if err != nil {
		return Registration{}, err
	}

	return Registration{firstName: fn, email: em, password: pw}, nil
}

func (r Registration) FirstName() user.FirstName { return r.firstName }
func (r Registration) Email() user.Email         { return r.email }
func (r Registration) Password() user.Password   { return r.password }

// Activation is the uid/token pair from an activation link.
type Activation struct {
	uid   string
	token string
}

func NewActivation(uid, token string) (Activation, error) {
	uid = strings.TrimSpace(uid)
	token = strings.TrimSpace(token)
	if uid == "" {
		return Activation{}, ErrMissingUID
	}
	if token == "" {
		return Activation{}, ErrMissingToken
	}
	return Activation{uid: uid, token: token}, nil
}

func (a Activation) UID() string   { return a.uid }
func (a Activation) Token() string { return a.token }

type PasswordResetConfirm struct {
	activation  Activation
	newPassword user.Password
}

func NewPasswordResetConfirm(uid, token, newPassword, reNewPassword string) (PasswordResetConfirm, error) {
	if newPassword != reNewPassword {
		return PasswordResetConfirm{}, ErrPasswordMismatch
	}

	a, err := NewActivation(uid, token)
	if err != nil {
		return PasswordResetConfirm{}, err
	}

	pw, err := user.NewPassword(newPassword)
	if err != nil {
		return PasswordResetConfirm{}, err
	}

	return PasswordResetConfirm{activation: a, newPassword: pw}, nil
}

func (p PasswordResetConfirm) UID() string                { return p.activation.uid }
func (p PasswordResetConfirm) Token() string              { return p.activation.token }
func (p PasswordResetConfirm) NewPassword() user.Password { return p.newPassword }

// AccountVerification carries the code mailed after registration.
type AccountVerification struct {
	userID string
	code   string
}

func NewAccountVerification(userID, code string) (AccountVerification, error) {
	userID = strings.TrimSpace(userID)
	code = strings.TrimSpace(code)
	if userID == "" {
		return AccountVerification{}, ErrMissingUID
	}
	if code == "" {
		return AccountVerification{}, ErrMissingCode
	}
	return AccountVerification{userID: userID, code: code}, nil
}

func (v AccountVerification) UserID() string { return v.userID }
func (v AccountVerification) Code() string   { return v.code }

var socialProviders = map[string]struct{}{
	"google-oauth2": {},
	"facebook":      {},
	"github":        {},
}

type SocialLogin struct {
	provider string
	state    string
	code     string
}

func NewSocialLogin(provider, state, code string) (SocialLogin, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if _, ok := socialProviders[provider]; !ok {
		return SocialLogin{}, ErrUnknownProvider
	}
	if state == "" || code == "" {
		return SocialLogin{}, ErrMissingState
	}
	return SocialLogin{provider: provider, state: state, code: code}, nil
}

func (s SocialLogin) Provider() string { return s.provider }
func (s SocialLogin) State() string    { return s.state }
func (s SocialLogin) Code() string     { return s.code }

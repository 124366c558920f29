package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooWeak  = errors.New("password must be at least 8 characters long")
	ErrEmptyFirstName   = errors.New("first name is required")
	ErrFirstNameTooLong = errors.New("first name is too long")
)

const (
	MinPasswordLength  = 8
	MaxFirstNameLength = 150
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Normalized is the form used as a lookup key.
func (e Email) Normalized() string {
	return strings.ToLower(e.value)
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type FirstName struct {
	value string
}

func NewFirstName(s string) (FirstName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FirstName{}, ErrEmptyFirstName
	}
	if utf8.RuneCountInString(s) > MaxFirstNameLength {
		return FirstName{}, ErrFirstNameTooLong
	}
	return FirstName{value: s}, nil
}

func (f FirstName) Value() string {
	return f.value
}

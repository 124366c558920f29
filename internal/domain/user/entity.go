package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyActive = errors.New("user is already active")
	ErrInvalidCode   = errors.New("invalid verification code")
)

// User is an account as held by the account service.
type User struct {
	id               uuid.UUID
	firstName        FirstName
	lastName         string
	email            Email
	passwordHash     string
	isActive         bool
	verificationCode string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(firstName FirstName, email Email, passwordHash, verificationCode string, now time.Time) *User {
	return &User{
		id:               uuid.New(),
		firstName:        firstName,
		email:            email,
		passwordHash:     passwordHash,
		verificationCode: verificationCode,
		createdAt:        now,
		updatedAt:        now,
	}
}

// Activate marks the account active. A non-empty code must match the one issued at registration.
func (u *User) Activate(code string, now time.Time) error {
	if u.isActive {
		return ErrAlreadyActive
	}
	if code != "" && code != u.verificationCode {
		return ErrInvalidCode
	}
	u.isActive = true
	u.verificationCode = ""
	u.updatedAt = now
	return nil
}

func (u *User) ChangePassword(passwordHash string, now time.Time) {
	u.passwordHash = passwordHash
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) FirstName() FirstName     { return u.firstName }
func (u *User) LastName() string         { return u.lastName }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) VerificationCode() string { return u.verificationCode }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

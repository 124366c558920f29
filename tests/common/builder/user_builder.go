//go:build unit || e2e

package builder

import (
	"time"

	"pos-terminal/internal/domain/user"
	"pos-terminal/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	FirstName        string
	Email            string
	PasswordHash     string
	VerificationCode string
	Now              time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		FirstName:        "Casey",
		Email:            "cashier@example.com",
		PasswordHash:     "hashed_password",
		VerificationCode: "123456",
		Now:              time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	firstName, err := user.NewFirstName(u.FirstName)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(firstName, email, u.PasswordHash, u.VerificationCode, u.Now), nil
}

// BuildView is the profile the account service would report for this user.
func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.NewString(),
		FirstName: u.FirstName,
		Email:     u.Email,
	}
}

func (u *UserBuilder) WithFirstName(name string) *UserBuilder {
	u.FirstName = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithVerificationCode(code string) *UserBuilder {
	u.VerificationCode = code
	return u
}

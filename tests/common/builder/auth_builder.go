//go:build unit || e2e

package builder

import (
	reqdto "pos-terminal/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "cashier@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

type RegisterBuilder struct {
	FirstName  string
	Email      string
	Password   string
	RePassword string
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{
		FirstName:  "Casey",
		Email:      "cashier@example.com",
		Password:   "password123",
		RePassword: "password123",
	}
}

func (r *RegisterBuilder) With(mutate func(*RegisterBuilder)) *RegisterBuilder {
	mutate(r)
	return r
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FirstName:  r.FirstName,
		Email:      r.Email,
		Password:   r.Password,
		RePassword: r.RePassword,
	}
}

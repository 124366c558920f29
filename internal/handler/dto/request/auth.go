package request

import (
	"pos-terminal/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RePassword string `json:"re_password" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (auth.Registration, error) {
	return auth.NewRegistration(r.FirstName, r.Email, r.Password, r.RePassword)
}

type ActivationRequest struct {
	UID   string `json:"uid" binding:"required"`
	Token string `json:"token" binding:"required"`
}

func (r *ActivationRequest) ToDomain() (auth.Activation, error) {
	return auth.NewActivation(r.UID, r.Token)
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordConfirmRequest struct {
	UID           string `json:"uid" binding:"required"`
	Token         string `json:"token" binding:"required"`
	NewPassword   string `json:"new_password" binding:"required"`
	ReNewPassword string `json:"re_new_password" binding:"required"`
}

func (r *ResetPasswordConfirmRequest) ToDomain() (auth.PasswordResetConfirm, error) {
	return auth.NewPasswordResetConfirm(r.UID, r.Token, r.NewPassword, r.ReNewPassword)
}

type VerifyAccountRequest struct {
	UserID string `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

func (r *VerifyAccountRequest) ToDomain() (auth.AccountVerification, error) {
	return auth.NewAccountVerification(r.UserID, r.Code)
}

type SocialAuthRequest struct {
	State string `form:"state" json:"state"`
	Code  string `form:"code" json:"code"`
}

func (r *SocialAuthRequest) ToDomain(provider string) (auth.SocialLogin, error) {
	return auth.NewSocialLogin(provider, r.State, r.Code)
}

// Package authstub is a development stand-in for the remote account service. It speaks the
// same JSON contract as the real one but keeps accounts in memory.
package authstub

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/domain/user"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/jwt"
	"pos-terminal/internal/pkg/password"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	users  *userStore
	tokens *jwt.Service
	hasher *password.Hasher
	clock  clock.Clock
	logger *slog.Logger
}

func NewServer(tokens *jwt.Service, hasher *password.Hasher, clk clock.Clock, logger *slog.Logger) *Server {
	return &Server{
		users:  newUserStore(),
		tokens: tokens.WithNow(clk.Now),
		hasher: hasher,
		clock:  clk,
		logger: logger,
	}
}

// Register mounts the account API on engine.
func (s *Server) Register(engine *gin.Engine) {
	engine.POST("/jwt/create/", s.createToken)
	engine.POST("/jwt/refresh/", s.refreshToken)
	engine.POST("/jwt/verify/", s.verifyToken)
	engine.GET("/users/me/", s.me)
	engine.POST("/users/activation/", s.activate)
	engine.POST("/users/reset_password/", s.resetPassword)
	engine.POST("/users/reset_password_confirm/", s.resetPasswordConfirm)
	engine.POST("/api/v1/accounts/register/", s.register)
	engine.POST("/api/v1/accounts/logout/", s.logout)
	engine.POST("/api/v1/accounts/verify/", s.verifyAccount)
	engine.GET("/api/v1/accounts/verify/", s.resendVerification)
	engine.POST("/o/:provider/", s.socialAuthenticate)
}

// SeedUser creates an active account, for local runs and tests.
func (s *Server) SeedUser(firstName, email, plain string) (uuid.UUID, error) {
	u, err := s.newUser(firstName, email, plain)
	if err != nil {
		return uuid.Nil, err
	}
	if err := u.Activate("", s.clock.Now()); err != nil {
		return uuid.Nil, err
	}
	if err := s.users.add(u); err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

type profileBody struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func toProfile(u *user.User) profileBody {
	return profileBody{
		ID:        u.ID().String(),
		FirstName: u.FirstName().Value(),
		LastName:  u.LastName(),
		Email:     u.Email().Value(),
	}
}

func (s *Server) createToken(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "detail", "Malformed request.")
		return
	}

	creds, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		unauthorized(c, "No active account found with the given credentials")
		return
	}
	u, err := s.users.findByEmail(creds.Email())
	if err != nil || !u.IsActive() || s.hasher.Compare(u.PasswordHash(), creds.Password()) != nil {
		unauthorized(c, "No active account found with the given credentials")
		return
	}

	access, refresh, err := s.issuePair(u.ID())
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh, "id": u.ID().String()})
}

func (s *Server) refreshToken(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		badRequest(c, "refresh", "This field is required.")
		return
	}

	claims, err := s.tokens.ValidateTyped(req.Refresh, jwt.TokenTypeRefresh)
	if err != nil || s.users.isRevoked(claims.ID) {
		unauthorized(c, "Token is invalid or expired")
		return
	}

	access, err := s.tokens.GenerateAccessToken(claims.UserID)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (s *Server) verifyToken(c *gin.Context) {
	if _, ok := s.authenticate(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) me(c *gin.Context) {
	u, ok := s.authenticate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toProfile(u))
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		FirstName  string `json:"first_name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		RePassword string `json:"re_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "detail", "Malformed request.")
		return
	}
	if req.Password != req.RePassword {
		badRequest(c, "non_field_errors", "The two password fields didn't match.")
		return
	}

	u, err := s.newUser(req.FirstName, req.Email, req.Password)
	if err != nil {
		badRequest(c, fieldFor(err), err.Error())
		return
	}
	if err := s.users.add(u); err != nil {
		badRequest(c, "email", err.Error())
		return
	}

	s.logger.Info("account registered",
		"user_id", u.ID().String(),
		"activation_uid", u.ID().String(),
		"activation_token", u.VerificationCode(),
	)
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": toProfile(u)})
}

func (s *Server) activate(c *gin.Context) {
	var req struct {
		UID   string `json:"uid"`
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "detail", "Malformed request.")
		return
	}
	if req.Token == "" {
		badRequest(c, "token", "This field is required.")
		return
	}
	s.activateAccount(c, req.UID, req.Token, http.StatusNoContent)
}

func (s *Server) verifyAccount(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Code   string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "detail", "Malformed request.")
		return
	}
	if req.Code == "" {
		badRequest(c, "code", "This field is required.")
		return
	}
	s.activateAccount(c, req.UserID, req.Code, http.StatusOK)
}

func (s *Server) activateAccount(c *gin.Context, rawID, code string, status int) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		badRequest(c, "uid", "Invalid user id.")
		return
	}
	err = s.users.update(id, func(u *user.User) error {
		return u.Activate(code, s.clock.Now())
	})
	switch {
	case errors.Is(err, ErrUserNotFound):
		badRequest(c, "uid", "Invalid user id.")
	case errors.Is(err, user.ErrInvalidCode):
		badRequest(c, "token", "Invalid token for given user.")
	case errors.Is(err, user.ErrAlreadyActive):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Stale token for given user."})
	case err != nil:
		s.internalError(c, err)
	case status == http.StatusNoContent:
		c.Status(status)
	default:
		c.JSON(status, gin.H{"success": true})
	}
}

func (s *Server) resendVerification(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		badRequest(c, "id", "Invalid user id.")
		return
	}
	u, err := s.users.findByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if u.IsActive() {
		badRequest(c, "detail", "Account is already verified.")
		return
	}
	s.logger.Info("verification code resent", "user_id", id.String(), "code", u.VerificationCode())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// resetPassword always answers 204 so the endpoint does not reveal which emails exist.
func (s *Server) resetPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "detail", "Malformed request.")
		return
	}
	if email, err := user.NewEmail(req.Email); err == nil {
		if u, err := s.users.findByEmail(email); err == nil {
			token := uuid.NewString()
			s.users.setResetToken(u.ID(), token)
			s.logger.Info("password reset requested", "uid", u.ID().String(), "token", token)
		}
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) resetPasswordConfirm(c *gin.Context) {
	var req struct {
		UID           string `json:"uid"`
		Token         string `json:"token"`
		NewPassword   string `json:"new_password"`
		ReNewPassword string `json:"re_new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "detail", "Malformed request.")
		return
	}
	if req.NewPassword != req.ReNewPassword {
		badRequest(c, "non_field_errors", "The two password fields didn't match.")
		return
	}
	pw, err := user.NewPassword(req.NewPassword)
	if err != nil {
		badRequest(c, "new_password", err.Error())
		return
	}
	id, err := uuid.Parse(req.UID)
	if err != nil || !s.users.consumeResetToken(id, req.Token) {
		badRequest(c, "token", "Invalid token for given user.")
		return
	}
	hash, err := s.hasher.Hash(pw.Value())
	if err != nil {
		s.internalError(c, err)
		return
	}
	err = s.users.update(id, func(u *user.User) error {
		u.ChangePassword(hash, s.clock.Now())
		return nil
	})
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) logout(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		badRequest(c, "refresh", "This field is required.")
		return
	}
	claims, err := s.tokens.ValidateTyped(req.Refresh, jwt.TokenTypeRefresh)
	if err != nil {
		unauthorized(c, "Token is invalid or expired")
		return
	}
	s.users.revoke(claims.ID)
	c.Status(http.StatusNoContent)
}

// socialAuthenticate accepts any code for a known provider and signs in (or creates) the
// matching account.
func (s *Server) socialAuthenticate(c *gin.Context) {
	login, err := auth.NewSocialLogin(c.Param("provider"), c.Query("state"), c.Query("code"))
	if err != nil {
		badRequest(c, "non_field_errors", err.Error())
		return
	}

	email := fmt.Sprintf("%s@%s.social.local", sanitize(login.Code()), sanitize(login.Provider()))
	addr, err := user.NewEmail(email)
	if err != nil {
		badRequest(c, "code", "Invalid code.")
		return
	}
	u, err := s.users.findByEmail(addr)
	if err != nil {
		secret := uuid.NewString()
		if _, err := s.SeedUser(login.Provider(), email, secret); err != nil {
			s.internalError(c, err)
			return
		}
		if u, err = s.users.findByEmail(addr); err != nil {
			s.internalError(c, err)
			return
		}
	}

	access, refresh, err := s.issuePair(u.ID())
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"access": access, "refresh": refresh, "user": toProfile(u)})
}

func (s *Server) authenticate(c *gin.Context) (*user.User, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		unauthorized(c, "Authentication credentials were not provided.")
		return nil, false
	}
	claims, err := s.tokens.ValidateTyped(token, jwt.TokenTypeAccess)
	if err != nil {
		unauthorized(c, "Given token not valid for any token type")
		return nil, false
	}
	u, err := s.users.findByID(claims.UserID)
	if err != nil || !u.IsActive() {
		unauthorized(c, "User not found")
		return nil, false
	}
	return u, true
}

func (s *Server) newUser(firstName, email, plain string) (*user.User, error) {
	reg, err := auth.NewRegistration(firstName, email, plain, plain)
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(reg.Password().Value())
	if err != nil {
		return nil, err
	}
	code, err := verificationCode()
	if err != nil {
		return nil, err
	}
	return user.NewUser(reg.FirstName(), reg.Email(), hash, code, s.clock.Now()), nil
}

func (s *Server) issuePair(id uuid.UUID) (access, refresh string, err error) {
	access, err = s.tokens.GenerateAccessToken(id)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.tokens.GenerateRefreshToken(id)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error("account stub failure", "path", c.Request.URL.Path, "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "A server error occurred."})
}

func badRequest(c *gin.Context, field, msg string) {
	if field == "detail" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{field: []string{msg}})
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": msg})
}

func fieldFor(err error) string {
	switch {
	case errors.Is(err, user.ErrInvalidEmail):
		return "email"
	case errors.Is(err, user.ErrPasswordTooWeak):
		return "password"
	case errors.Is(err, user.ErrEmptyFirstName), errors.Is(err, user.ErrFirstNameTooLong):
		return "first_name"
	default:
		return "non_field_errors"
	}
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, s)
}

func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

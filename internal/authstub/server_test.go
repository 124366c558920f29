//go:build unit

package authstub

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/domain/user"
	"pos-terminal/internal/gateway"
	"pos-terminal/internal/infra/accountapi"
	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/jwt"
	"pos-terminal/internal/pkg/password"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	operatorEmail    = "cashier@example.com"
	operatorPassword = "correct-horse"
)

type ServerTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	stub     *Server
	server   *httptest.Server
	store    *kvstore.MemoryStore
	accounts *accountapi.Client
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwt.NewService("stub-secret", 15*time.Minute, 24*time.Hour)
	s.stub = NewServer(tokens, password.NewHasher(bcrypt.MinCost), s.clock, logger)

	engine := gin.New()
	s.stub.Register(engine)
	s.server = httptest.NewServer(engine)

	s.store = kvstore.NewMemoryStore(s.clock)
	client, err := gateway.NewHTTPClient(s.server.URL, s.store,
		gateway.WithHTTPClient(s.server.Client()),
		gateway.WithLogger(logger),
	)
	s.Require().NoError(err)
	s.accounts = accountapi.NewClient(client)
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ServerTestSuite) login() string {
	_, err := s.stub.SeedUser("Casey", operatorEmail, operatorPassword)
	s.Require().NoError(err)

	creds, err := auth.NewCredentials(operatorEmail, operatorPassword)
	s.Require().NoError(err)
	id, err := s.accounts.Login(s.ctx, creds)
	s.Require().NoError(err)
	return id
}

func (s *ServerTestSuite) stored(key string) string {
	v, err := s.store.Get(s.ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return ""
	}
	s.Require().NoError(err)
	return v
}

func (s *ServerTestSuite) TestLoginThenProfile() {
	id := s.login()

	s.NotEmpty(s.stored(auth.KeyAccessToken))
	s.NotEmpty(s.stored(auth.KeyRefreshToken))
	s.Equal(id, s.stored(auth.KeyUserID))

	me, err := s.accounts.Me(s.ctx)
	s.Require().NoError(err)
	s.Equal(id, me.ID)
	s.Equal(operatorEmail, me.Email)
	s.Equal("Casey", me.FirstName)

	s.Require().NoError(s.accounts.VerifyToken(s.ctx))
}

func (s *ServerTestSuite) TestLoginWithWrongPassword() {
	_, err := s.stub.SeedUser("Casey", operatorEmail, operatorPassword)
	s.Require().NoError(err)

	creds, err := auth.NewCredentials(operatorEmail, "wrong-password")
	s.Require().NoError(err)
	_, err = s.accounts.Login(s.ctx, creds)
	s.ErrorIs(err, gateway.ErrUnauthorized)
	s.Empty(s.stored(auth.KeyAccessToken))
}

func (s *ServerTestSuite) TestExpiredAccessTokenIsRefreshedTransparently() {
	s.login()
	before := s.stored(auth.KeyAccessToken)

	// the stub rejects the access token after 15 minutes; the terminal still holds it
	s.clock.Add(20 * time.Minute)

	me, err := s.accounts.Me(s.ctx)
	s.Require().NoError(err)
	s.Equal(operatorEmail, me.Email)

	after := s.stored(auth.KeyAccessToken)
	s.NotEmpty(after)
	s.NotEqual(before, after)
}

func (s *ServerTestSuite) TestLogoutRevokesRefreshToken() {
	s.login()
	access := s.stored(auth.KeyAccessToken)
	refresh := s.stored(auth.KeyRefreshToken)
	s.Require().NoError(s.accounts.Logout(s.ctx, refresh))
	s.Empty(s.stored(auth.KeyAccessToken))

	// put the revoked pair back, as a terminal that missed the logout would still hold it
	s.Require().NoError(s.store.Set(s.ctx, auth.KeyAccessToken, access, time.Hour))
	s.Require().NoError(s.store.Set(s.ctx, auth.KeyRefreshToken, refresh, time.Hour))
	s.clock.Add(20 * time.Minute)

	_, err := s.accounts.Me(s.ctx)
	s.ErrorIs(err, gateway.ErrUnauthorized)
	s.Empty(s.stored(auth.KeyAccessToken))
	s.Empty(s.stored(auth.KeyRefreshToken))
}

func (s *ServerTestSuite) TestRegisterAndActivate() {
	reg, err := auth.NewRegistration("Robin", "robin@example.com", "longenough", "longenough")
	s.Require().NoError(err)

	view, err := s.accounts.Register(s.ctx, reg)
	s.Require().NoError(err)
	s.Equal("robin@example.com", view.Email)

	creds, err := auth.NewCredentials("robin@example.com", "longenough")
	s.Require().NoError(err)
	_, err = s.accounts.Login(s.ctx, creds)
	s.ErrorIs(err, gateway.ErrUnauthorized, "inactive accounts cannot log in")

	email, err := user.NewEmail("robin@example.com")
	s.Require().NoError(err)
	stored, err := s.stub.users.findByEmail(email)
	s.Require().NoError(err)

	act, err := auth.NewActivation(view.ID, "000000-wrong")
	s.Require().NoError(err)
	s.ErrorIs(s.accounts.Activate(s.ctx, act), gateway.ErrBadRequest)

	act, err = auth.NewActivation(view.ID, stored.VerificationCode())
	s.Require().NoError(err)
	s.Require().NoError(s.accounts.Activate(s.ctx, act))

	_, err = s.accounts.Login(s.ctx, creds)
	s.NoError(err)
}

func (s *ServerTestSuite) TestRegisterDuplicateEmail() {
	_, err := s.stub.SeedUser("Casey", operatorEmail, operatorPassword)
	s.Require().NoError(err)

	reg, err := auth.NewRegistration("Casey", operatorEmail, "longenough", "longenough")
	s.Require().NoError(err)
	_, err = s.accounts.Register(s.ctx, reg)
	s.ErrorIs(err, gateway.ErrBadRequest)

	status, ok := gateway.AsStatusError(err)
	s.Require().True(ok)
	s.Equal(http.StatusBadRequest, status.StatusCode)
	s.Contains(string(status.Body), "email")
}

func (s *ServerTestSuite) TestPasswordReset() {
	id, err := s.stub.SeedUser("Casey", operatorEmail, operatorPassword)
	s.Require().NoError(err)

	s.Require().NoError(s.accounts.ResetPassword(s.ctx, operatorEmail))
	s.Require().NoError(s.accounts.ResetPassword(s.ctx, "nobody@example.com"), "unknown emails are not revealed")

	s.stub.users.mu.RLock()
	token := s.stub.users.resetTokens[id]
	s.stub.users.mu.RUnlock()
	s.Require().NotEmpty(token)

	confirm, err := auth.NewPasswordResetConfirm(id.String(), token, "brand-new-pass", "brand-new-pass")
	s.Require().NoError(err)
	s.Require().NoError(s.accounts.ResetPasswordConfirm(s.ctx, confirm))
	s.ErrorIs(s.accounts.ResetPasswordConfirm(s.ctx, confirm), gateway.ErrBadRequest, "tokens are single use")

	creds, err := auth.NewCredentials(operatorEmail, "brand-new-pass")
	s.Require().NoError(err)
	_, err = s.accounts.Login(s.ctx, creds)
	s.NoError(err)
}

func (s *ServerTestSuite) TestVerifyAccount() {
	reg, err := auth.NewRegistration("Robin", "robin@example.com", "longenough", "longenough")
	s.Require().NoError(err)
	view, err := s.accounts.Register(s.ctx, reg)
	s.Require().NoError(err)

	s.Require().NoError(s.accounts.RequestAccountVerification(s.ctx, view.ID))

	email, err := user.NewEmail("robin@example.com")
	s.Require().NoError(err)
	stored, err := s.stub.users.findByEmail(email)
	s.Require().NoError(err)

	v, err := auth.NewAccountVerification(view.ID, stored.VerificationCode())
	s.Require().NoError(err)
	s.Require().NoError(s.accounts.VerifyAccount(s.ctx, v))

	s.ErrorIs(s.accounts.RequestAccountVerification(s.ctx, view.ID), gateway.ErrBadRequest)
}

func (s *ServerTestSuite) TestSocialAuthenticate() {
	login, err := auth.NewSocialLogin("github", "state-1", "Abc123")
	s.Require().NoError(err)

	first, err := s.accounts.SocialAuthenticate(s.ctx, login)
	s.Require().NoError(err)
	s.Equal("abc123@github.social.local", first.Email)

	again, err := s.accounts.SocialAuthenticate(s.ctx, login)
	s.Require().NoError(err)
	s.Equal(first.ID, again.ID)
}

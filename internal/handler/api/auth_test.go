//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pos-terminal/internal/gateway"
	"pos-terminal/internal/handler/api"
	reqdto "pos-terminal/internal/handler/dto/request"
	resdto "pos-terminal/internal/handler/dto/response"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/usecase"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"
	"pos-terminal/tests/common/builder"
	"pos-terminal/tests/common/httptest"
	"pos-terminal/tests/common/testutil"
	commandsmock "pos-terminal/tests/mock/commands"
	queriesmock "pos-terminal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fixedSession struct {
	state usecase.SessionState
}

func (f fixedSession) State() usecase.SessionState { return f.state }

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	session := fixedSession{state: usecase.SessionState{IsAuthenticated: true}}
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, session)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/session", s.handler.Session)
	s.router.GET("/auth/me", s.handler.Me)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/activation", s.handler.Activate)
	s.router.POST("/auth/social/:provider", s.handler.SocialAuthenticate)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildView()

	s.Run("success: returns 200 OK with the operator", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{UserID: returnUser.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any()).
			Return(returnUser, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.ID, response.UserID)
		s.Require().NotNil(response.User)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("success: profile lookup failure still signs in", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{UserID: returnUser.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any()).
			Return(nil, queries.ErrAccountService).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.User)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.Mark(gateway.ErrUnauthorized, commands.ErrInvalidCredentials),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "account service failure",
				commandsError:  errs.Mark(gateway.ErrServer, commands.ErrAccountService),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Account service error",
			},
			{
				name:           "breaker open",
				commandsError:  errs.Mark(errors.New("circuit breaker is open"), errs.ErrUpstreamUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Account service unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Login failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: store failure", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any()).
			Return(errs.Mark(errors.New("redis down"), errs.ErrStoreOperationFailed)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Logout failed")
	})
}

func (s *AuthHandlerTestSuite) TestSession() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/session", nil)

	var state usecase.SessionState
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &state)
	s.True(state.IsAuthenticated)
	s.False(state.IsLoading)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the operator", func() {
		returnUser := builder.NewUserBuilder().BuildView()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any()).Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(*returnUser, response)
	})

	s.Run("error: 401 when signed out", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any()).
			Return(nil, errs.Mark(gateway.ErrUnauthorized, queries.ErrNotAuthenticated)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewRegisterBuilder().BuildDTO()

	s.Run("success: returns 201 Created", func() {
		returnUser := builder.NewUserBuilder().BuildView()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.Success)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("error: passwords do not match", func() {
		mismatch := builder.NewRegisterBuilder().With(func(r *builder.RegisterBuilder) {
			r.RePassword = "something-else"
		}).BuildDTO()
		s.mockCommands.EXPECT().Register(gomock.Any(), mismatch).
			Return(nil, commands.ErrPasswordMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, mismatch)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Passwords do not match")
	})

	s.Run("error: upstream field errors are passed through", func() {
		rejected := &gateway.StatusError{
			Method:     http.MethodPost,
			Path:       "/api/v1/accounts/register/",
			StatusCode: http.StatusBadRequest,
			Body:       []byte(`{"email":["user with this email already exists."]}`),
		}
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, errs.Mark(rejected, commands.ErrUpstreamRejected)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Request rejected by account service")
		s.Equal(map[string]any{"email": []any{"user with this email already exists."}}, resp.Detail)
	})

	s.Run("error: missing first name", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("first_name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestActivate() {
	req := reqdto.ActivationRequest{UID: "9f1c", Token: "123456"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Activate(gomock.Any(), req).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/activation", req)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: stale link keeps the upstream status", func() {
		stale := &gateway.StatusError{Method: http.MethodPost, Path: "/users/activation/", StatusCode: http.StatusForbidden}
		s.mockCommands.EXPECT().Activate(gomock.Any(), req).
			Return(errs.Mark(stale, commands.ErrUpstreamRejected)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/activation", req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *AuthHandlerTestSuite) TestSocialAuthenticate() {
	returnUser := builder.NewUserBuilder().BuildView()
	want := reqdto.SocialAuthRequest{State: "s1", Code: "abc"}
	s.mockCommands.EXPECT().SocialAuthenticate(gomock.Any(), "github", want).Return(returnUser, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/social/github?state=s1&code=abc", nil)
	var response queries.UserView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(returnUser.ID, response.ID)
}

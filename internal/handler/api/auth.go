package api

import (
	"net/http"

	reqdto "pos-terminal/internal/handler/dto/request"
	resdto "pos-terminal/internal/handler/dto/response"
	"pos-terminal/internal/handler/httperr"
	"pos-terminal/internal/usecase"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// SessionStateReader exposes the session flags the UI polls.
type SessionStateReader interface {
	State() usecase.SessionState
}

type AuthHandler struct {
	cmds    commands.AuthCommands
	q       queries.UserQueries
	session SessionStateReader
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, session SessionStateReader) *AuthHandler {
	return &AuthHandler{
		cmds:    cmds,
		q:       q,
		session: session,
	}
}

// @Summary Operator login
// @Description Exchange email and password for tokens held by the terminal
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Login failed")
		return
	}

	res := resdto.LoginResponse{UserID: result.UserID}
	if user, err := h.q.GetCurrentUser(c.Request.Context()); err == nil {
		res.User = user
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Operator logout
// @Description Revoke the refresh token and forget the stored credentials
// @Tags auth
// @Success 204 "No Content"
// @Failure 500 {object} httperr.Response
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.cmds.Logout(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err, "Logout failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Session state
// @Description Whether the terminal is signed in and whether the startup check is still running
// @Tags auth
// @Produce json
// @Success 200 {object} usecase.SessionState
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

// @Summary Verify session
// @Description Ask the account service whether the stored access token is valid
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/v1/auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	if err := h.cmds.VerifySession(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err, "Verification failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Tags auth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.q.GetCurrentUser(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Register operator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	user, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterResponse{Success: true, User: user})
}

// @Summary Activate account
// @Tags auth
// @Accept json
// @Param request body reqdto.ActivationRequest true "Activation"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/v1/auth/activation [post]
func (h *AuthHandler) Activate(c *gin.Context) {
	var req reqdto.ActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.Activate(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err, "Activation failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Request password reset
// @Tags auth
// @Accept json
// @Param request body reqdto.ResetPasswordRequest true "Email"
// @Success 204 "No Content"
// @Router /api/v1/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.ResetPassword(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err, "Password reset failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm password reset
// @Tags auth
// @Accept json
// @Param request body reqdto.ResetPasswordConfirmRequest true "New password"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/v1/auth/reset-password/confirm [post]
func (h *AuthHandler) ResetPasswordConfirm(c *gin.Context) {
	var req reqdto.ResetPasswordConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.ResetPasswordConfirm(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err, "Password reset failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Verify account
// @Tags auth
// @Accept json
// @Param request body reqdto.VerifyAccountRequest true "Verification code"
// @Success 204 "No Content"
// @Router /api/v1/auth/verify-account [post]
func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	var req reqdto.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.VerifyAccount(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err, "Account verification failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resend account verification
// @Tags auth
// @Param id query string true "User ID"
// @Success 204 "No Content"
// @Router /api/v1/auth/verify-account [get]
func (h *AuthHandler) RequestAccountVerification(c *gin.Context) {
	if err := h.cmds.RequestAccountVerification(c.Request.Context(), c.Query("id")); err != nil {
		abortWithUsecaseError(c, err, "Account verification failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Social sign-in callback
// @Tags auth
// @Produce json
// @Param provider path string true "Provider"
// @Param state query string true "OAuth state"
// @Param code query string true "OAuth code"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Router /api/v1/auth/social/{provider} [post]
func (h *AuthHandler) SocialAuthenticate(c *gin.Context) {
	var req reqdto.SocialAuthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	user, err := h.cmds.SocialAuthenticate(c.Request.Context(), c.Param("provider"), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Social authentication failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

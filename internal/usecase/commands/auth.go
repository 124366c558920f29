package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/domain/user"
	"pos-terminal/internal/gateway"
	reqdto "pos-terminal/internal/handler/dto/request"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/usecase/queries"
)

var (
	ErrValidation         = errs.New("validation failed")
	ErrPasswordMismatch   = errs.New("passwords do not match")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrNotAuthenticated   = errs.New("not authenticated")
	ErrUpstreamRejected   = errs.New("request rejected by account service")
	ErrAccountService     = errs.New("account service unavailable")
)

type LoginResult struct {
	UserID string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context) error
	VerifySession(ctx context.Context) error
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error)
	Activate(ctx context.Context, req reqdto.ActivationRequest) error
	ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error
	ResetPasswordConfirm(ctx context.Context, req reqdto.ResetPasswordConfirmRequest) error
	VerifyAccount(ctx context.Context, req reqdto.VerifyAccountRequest) error
	RequestAccountVerification(ctx context.Context, userID string) error
	SocialAuthenticate(ctx context.Context, provider string, req reqdto.SocialAuthRequest) (*queries.UserView, error)
	// Probe settles the session state at startup from whatever credentials survived the restart.
	Probe(ctx context.Context) bool
}

type authCommandsImpl struct {
	api     AccountAPI
	store   CredentialStore
	session SessionNotifier
}

func NewAuthCommands(api AccountAPI, store CredentialStore, session SessionNotifier) AuthCommands {
	return &authCommandsImpl{
		api:     api,
		store:   store,
		session: session,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	userID, err := a.api.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) || errors.Is(err, gateway.ErrBadRequest) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, classify(err)
	}

	return &LoginResult{UserID: userID}, nil
}

// Logout revokes the refresh token upstream. The terminal is signed out locally even when the
// account service cannot be reached.
func (a *authCommandsImpl) Logout(ctx context.Context) error {
	refresh, err := a.store.Get(ctx, auth.KeyRefreshToken)
	if err != nil || refresh == "" {
		return a.clearLocally(ctx)
	}

	if err := a.api.Logout(ctx, refresh); err != nil {
		slog.Warn("upstream logout failed, clearing credentials locally", "error", err.Error())
		return a.clearLocally(ctx)
	}
	return nil
}

func (a *authCommandsImpl) clearLocally(ctx context.Context) error {
	if err := a.store.Delete(ctx, auth.CredentialKeys...); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	a.session.LoggedOut()
	return nil
}

func (a *authCommandsImpl) VerifySession(ctx context.Context) error {
	if err := a.api.VerifyToken(ctx); err != nil {
		return classify(err)
	}
	return nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
	reg, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, errs.Mark(err, ErrPasswordMismatch)
		}
		return nil, errs.Mark(err, ErrValidation)
	}

	u, err := a.api.Register(ctx, reg)
	if err != nil {
		return nil, classify(err)
	}
	return u, nil
}

func (a *authCommandsImpl) Activate(ctx context.Context, req reqdto.ActivationRequest) error {
	act, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	return classify(a.api.Activate(ctx, act))
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	return classify(a.api.ResetPassword(ctx, email.Value()))
}

func (a *authCommandsImpl) ResetPasswordConfirm(ctx context.Context, req reqdto.ResetPasswordConfirmRequest) error {
	confirm, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return errs.Mark(err, ErrPasswordMismatch)
		}
		return errs.Mark(err, ErrValidation)
	}
	return classify(a.api.ResetPasswordConfirm(ctx, confirm))
}

func (a *authCommandsImpl) VerifyAccount(ctx context.Context, req reqdto.VerifyAccountRequest) error {
	v, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	return classify(a.api.VerifyAccount(ctx, v))
}

func (a *authCommandsImpl) RequestAccountVerification(ctx context.Context, userID string) error {
	if userID == "" {
		return errs.Mark(auth.ErrMissingUID, ErrValidation)
	}
	return classify(a.api.RequestAccountVerification(ctx, userID))
}

func (a *authCommandsImpl) SocialAuthenticate(ctx context.Context, provider string, req reqdto.SocialAuthRequest) (*queries.UserView, error) {
	login, err := req.ToDomain(provider)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	u, err := a.api.SocialAuthenticate(ctx, login)
	if err != nil {
		return nil, classify(err)
	}
	return u, nil
}

func (a *authCommandsImpl) Probe(ctx context.Context) bool {
	access, err := a.store.Get(ctx, auth.KeyAccessToken)
	if err != nil || access == "" {
		refresh, rerr := a.store.Get(ctx, auth.KeyRefreshToken)
		if rerr != nil || refresh == "" {
			a.session.FinishLoading(false)
			return false
		}
	}

	_, err = a.api.Me(ctx)
	if err != nil {
		slog.Info("session probe failed", "error", err.Error())
		a.session.FinishLoading(false)
		return false
	}
	a.session.FinishLoading(true)
	return true
}

// classify marks an account service error with the usecase sentinel handlers map to a status.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gateway.ErrUnauthorized), errs.Is(err, gateway.ErrNoRefreshToken):
		return errs.Mark(err, ErrNotAuthenticated)
	case errors.Is(err, gateway.ErrBadRequest), errors.Is(err, gateway.ErrForbidden),
		errors.Is(err, gateway.ErrNotFound), errors.Is(err, gateway.ErrConflict):
		return errs.Mark(err, ErrUpstreamRejected)
	default:
		return errs.Mark(err, ErrAccountService)
	}
}

// Package accountapi is the typed client for the remote account service. Every call goes
// through the gateway, so credentials are attached and refreshed transparently.
package accountapi

import (
	"context"
	"net/http"
	"net/url"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/gateway"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/usecase/queries"
)

const (
	pathMe                   = "/users/me/"
	pathVerifyToken          = "/jwt/verify/"
	pathRegister             = "/api/v1/accounts/register/"
	pathVerifyAccount        = "/api/v1/accounts/verify/"
	pathActivation           = "/users/activation/"
	pathResetPassword        = "/users/reset_password/"
	pathResetPasswordConfirm = "/users/reset_password_confirm/"
)

type Client struct {
	gw gateway.Client
}

func NewClient(gw gateway.Client) *Client {
	return &Client{gw: gw}
}

type profile struct {
	ID        any    `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (p profile) toView() *queries.UserView {
	v := &queries.UserView{FirstName: p.FirstName, LastName: p.LastName, Email: p.Email}
	if p.ID != nil {
		v.ID = idString(p.ID)
	}
	return v
}

func (c *Client) post(ctx context.Context, path string, body any) (*gateway.Response, error) {
	resp, err := c.gw.Send(ctx, gateway.Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return resp, errs.Wrapf(err, "POST %s", path)
	}
	return resp, nil
}

// Login exchanges credentials for a token pair. The gateway persists the tokens; only the
// user id is returned.
func (c *Client) Login(ctx context.Context, creds auth.Credentials) (string, error) {
	resp, err := c.post(ctx, gateway.PathTokenCreate, map[string]string{
		"email":    creds.Email().Value(),
		"password": creds.Password(),
	})
	if err != nil {
		return "", err
	}
	var body struct {
		ID any `json:"id"`
	}
	if err := resp.Decode(&body); err != nil {
		return "", err
	}
	return idString(body.ID), nil
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	_, err := c.post(ctx, gateway.PathLogout, map[string]string{"refresh": refreshToken})
	return err
}

// VerifyToken asks the account service whether the attached access token is still valid.
func (c *Client) VerifyToken(ctx context.Context) error {
	_, err := c.post(ctx, pathVerifyToken, struct{}{})
	return err
}

func (c *Client) Me(ctx context.Context) (*queries.UserView, error) {
	resp, err := c.gw.Send(ctx, gateway.Request{Method: http.MethodGet, Path: pathMe})
	if err != nil {
		return nil, errs.Wrapf(err, "GET %s", pathMe)
	}
	var p profile
	if err := resp.Decode(&p); err != nil {
		return nil, err
	}
	return p.toView(), nil
}

func (c *Client) Register(ctx context.Context, reg auth.Registration) (*queries.UserView, error) {
	resp, err := c.post(ctx, pathRegister, map[string]string{
		"first_name":  reg.FirstName().Value(),
		"email":       reg.Email().Value(),
		"password":    reg.Password().Value(),
		"re_password": reg.Password().Value(),
	})
	if err != nil {
		return nil, err
	}
	var body struct {
		Success bool    `json:"success"`
		User    profile `json:"user"`
	}
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	return body.User.toView(), nil
}

func (c *Client) Activate(ctx context.Context, a auth.Activation) error {
	_, err := c.post(ctx, pathActivation, map[string]string{"uid": a.UID(), "token": a.Token()})
	return err
}

func (c *Client) ResetPassword(ctx context.Context, email string) error {
	_, err := c.post(ctx, pathResetPassword, map[string]string{"email": email})
	return err
}

func (c *Client) ResetPasswordConfirm(ctx context.Context, p auth.PasswordResetConfirm) error {
	_, err := c.post(ctx, pathResetPasswordConfirm, map[string]string{
		"uid":             p.UID(),
		"token":           p.Token(),
		"new_password":    p.NewPassword().Value(),
		"re_new_password": p.NewPassword().Value(),
	})
	return err
}

func (c *Client) VerifyAccount(ctx context.Context, v auth.AccountVerification) error {
	_, err := c.post(ctx, pathVerifyAccount, map[string]string{"userId": v.UserID(), "code": v.Code()})
	return err
}

// RequestAccountVerification asks the account service to (re)send a verification code.
func (c *Client) RequestAccountVerification(ctx context.Context, userID string) error {
	_, err := c.gw.Send(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   pathVerifyAccount,
		Query:  url.Values{"id": {userID}},
	})
	if err != nil {
		return errs.Wrapf(err, "GET %s", pathVerifyAccount)
	}
	return nil
}

// SocialAuthenticate completes an OAuth round trip. The account service expects the state and
// code as query parameters on a form-encoded POST.
func (c *Client) SocialAuthenticate(ctx context.Context, s auth.SocialLogin) (*queries.UserView, error) {
	path := "/o/" + url.PathEscape(s.Provider()) + "/"
	resp, err := c.gw.Send(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  url.Values{"state": {s.State()}, "code": {s.Code()}},
		Form:   url.Values{},
	})
	if err != nil {
		return nil, errs.Wrapf(err, "POST %s", path)
	}
	var body struct {
		User profile `json:"user"`
	}
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	return body.User.toView(), nil
}

// Package gateway sends requests to the remote account API on behalf of the terminal
// session. It attaches the stored access token, persists credentials issued by the
// token endpoints and recovers from an expired access token with a single shared refresh.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/pkg/errs"
)

const (
	PathTokenCreate  = "/jwt/create/"
	PathTokenRefresh = "/jwt/refresh/"
	PathLogout       = "/api/v1/accounts/logout/"
)

// Request describes one call against the account API. Path is relative to the base URL.
// Form takes precedence over Body; Body is JSON encoded.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   url.Values
	Header http.Header
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errs.Wrap(err, "decode upstream response")
	}
	return nil
}

// SessionObserver is told when the session gains or loses its credentials.
type SessionObserver interface {
	Authenticated()
	LoggedOut()
}

type noopObserver struct{}

func (noopObserver) Authenticated() {}
func (noopObserver) LoggedOut()     {}

type Client interface {
	// Send dispatches req. A non-2xx response is returned together with a *StatusError;
	// transport failures are returned as they are.
	Send(ctx context.Context, req Request) (*Response, error)
}

type Option func(*HTTPClient)

// WithHTTPClient sets the client for ordinary requests. The refresh round trip shares its
// transport but never its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithObserver(o SessionObserver) Option {
	return func(c *HTTPClient) { c.observer = o }
}

func WithTTLs(ttl TTLs) Option {
	return func(c *HTTPClient) { c.creds.ttl = ttl }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	refresher *http.Client
	creds     credentials
	observer  SessionObserver
	gate      refreshGate
	logger    *slog.Logger
}

func NewHTTPClient(baseURL string, store kvstore.Store, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errs.Wrap(err, "parse upstream base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errs.Newf("upstream base url %q must be absolute", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &HTTPClient{
		baseURL:  u,
		http:     http.DefaultClient,
		creds:    credentials{store: store, ttl: DefaultTTLs()},
		observer: noopObserver{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.refresher = untimed(c.http)
	c.logger = c.logger.With("component", "gateway")
	return c, nil
}

func (c *HTTPClient) Send(ctx context.Context, req Request) (*Response, error) {
	if err := c.gate.wait(ctx); err != nil {
		return nil, err
	}

	resp, sentToken, err := c.dispatch(ctx, c.http, req)
	if err != nil {
		return nil, err
	}
	if resp.OK() {
		return resp, c.afterSuccess(ctx, req, resp)
	}
	if resp.StatusCode != http.StatusUnauthorized || isTokenEndpoint(req.Path) {
		return resp, newStatusError(req, resp)
	}
	return c.reauthenticate(ctx, req, resp, sentToken)
}

// reauthenticate runs (or joins) the refresh and retries req once. The caller that ran a
// failed refresh gets the original 401; callers that only waited always retry.
func (c *HTTPClient) reauthenticate(ctx context.Context, req Request, unauthorized *Response, sentToken string) (*Response, error) {
	leader, err := c.gate.run(func() error {
		return c.refresh(context.WithoutCancel(ctx), sentToken)
	})
	if leader && err != nil {
		c.logger.Debug("refresh failed, surfacing 401", "path", req.Path, "error", err)
		return unauthorized, newStatusError(req, unauthorized)
	}

	resp, _, err := c.dispatch(ctx, c.http, req)
	if err != nil {
		return nil, err
	}
	if resp.OK() {
		return resp, c.afterSuccess(ctx, req, resp)
	}
	return resp, newStatusError(req, resp)
}

func (c *HTTPClient) afterSuccess(ctx context.Context, req Request, resp *Response) error {
	switch req.Path {
	case PathTokenCreate, PathTokenRefresh:
		var payload tokenPayload
		if err := resp.Decode(&payload); err != nil {
			return err
		}
		if err := c.creds.save(ctx, payload.tokenSet()); err != nil {
			return err
		}
		c.logger.Info("credentials issued", "path", req.Path)
		c.observer.Authenticated()
	case PathLogout:
		if err := c.creds.clear(ctx); err != nil {
			return err
		}
		c.logger.Info("credentials cleared")
		c.observer.LoggedOut()
	}
	return nil
}

// dispatch performs one round trip over hc. It returns the access token that was attached.
func (c *HTTPClient) dispatch(ctx context.Context, hc *http.Client, req Request) (*Response, string, error) {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, "", err
	}

	token, err := c.creds.accessToken(ctx)
	if err != nil {
		return nil, "", err
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := hc.Do(httpReq)
	if err != nil {
		return nil, token, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, token, err
	}
	return &Response{StatusCode: res.StatusCode, Header: res.Header, Body: body}, token, nil
}

func (c *HTTPClient) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := *c.baseURL
	u.Path += req.Path
	u.RawQuery = req.Query.Encode()

	var body io.Reader
	contentType := "application/json"
	switch {
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errs.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method(), u.String(), body)
	if err != nil {
		return nil, errs.Wrap(err, "build upstream request")
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	return httpReq, nil
}

// untimed copies hc without its overall timeout. A refresh, once issued, is waited for.
func untimed(hc *http.Client) *http.Client {
	cp := *hc
	cp.Timeout = 0
	return &cp
}

func isTokenEndpoint(path string) bool {
	return path == PathTokenCreate || path == PathTokenRefresh
}

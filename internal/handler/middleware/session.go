package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/handler/httperr"
	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

var publicPages = []string{LoginPath, "/register", "/forgot-password"}

// never gated: the API guards itself, the rest are assets or tooling
var ungatedPrefixes = []string{"/api", "/health", "/swagger", "/_next", "/static", "/assets"}

var ErrNoSession = errs.New("no stored credentials")

// TokenReader reads the terminal's stored credentials.
type TokenReader interface {
	Get(ctx context.Context, key string) (string, error)
}

type SessionMiddleware struct {
	tokens TokenReader
}

func NewSessionMiddleware(tokens TokenReader) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// RequireSession rejects API calls when the terminal holds no credentials at all. Expired
// access tokens are left to the gateway's refresh.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if m.has(ctx, auth.KeyAccessToken) || m.has(ctx, auth.KeyRefreshToken) {
			c.Next()
			return
		}
		httperr.AbortWithError(c, http.StatusUnauthorized, ErrNoSession, "Not authenticated", nil)
	}
}

// RouteGate redirects page requests: signed-in operators skip the public pages, everyone else
// is sent to the login page.
func (m *SessionMiddleware) RouteGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if !isGated(p) {
			c.Next()
			return
		}

		hasToken := m.has(c.Request.Context(), auth.KeyAccessToken)
		switch {
		case isPublicPage(p) && hasToken:
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
		case !isPublicPage(p) && !hasToken:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

func (m *SessionMiddleware) has(ctx context.Context, key string) bool {
	v, err := m.tokens.Get(ctx, key)
	if err != nil {
		if !errs.Is(err, kvstore.ErrNotFound) {
			slog.Warn("failed to read credentials", "key", key, "error", err.Error())
		}
		return false
	}
	return v != ""
}

func isGated(p string) bool {
	if p == "/favicon.ico" || path.Ext(p) != "" {
		return false
	}
	for _, prefix := range ungatedPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return false
		}
	}
	return true
}

func isPublicPage(p string) bool {
	for _, pub := range publicPages {
		if p == pub || strings.HasPrefix(p, pub+"/") {
			return true
		}
	}
	return false
}

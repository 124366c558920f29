//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/handler/middleware"
	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(t *testing.T, stored map[string]string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kvstore.NewMemoryStore(clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
	for k, v := range stored {
		require.NoError(t, store.Set(context.Background(), k, v, time.Hour))
	}
	m := middleware.NewSessionMiddleware(store)

	router := gin.New()
	router.GET("/api/v1/cart", m.RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.NoRoute(m.RouteGate(), func(c *gin.Context) {
		c.String(http.StatusOK, "page")
	})
	return router
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name       string
		stored     map[string]string
		expectCode int
	}{
		{name: "no credentials", stored: nil, expectCode: http.StatusUnauthorized},
		{name: "access token", stored: map[string]string{auth.KeyAccessToken: "a"}, expectCode: http.StatusNoContent},
		{name: "refresh token only, left to the gateway", stored: map[string]string{auth.KeyRefreshToken: "r"}, expectCode: http.StatusNoContent},
		{name: "empty values count as missing", stored: map[string]string{auth.KeyAccessToken: ""}, expectCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSessionRouter(t, tt.stored)
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/v1/cart", nil)
			if tt.expectCode == http.StatusUnauthorized {
				httptest.AssertErrorResponse(t, rec, tt.expectCode, "Not authenticated")
				return
			}
			assert.Equal(t, tt.expectCode, rec.Code)
		})
	}
}

func TestRouteGate(t *testing.T) {
	signedIn := map[string]string{auth.KeyAccessToken: "a"}

	tests := []struct {
		name     string
		stored   map[string]string
		path     string
		location string
	}{
		{name: "signed out is sent to login", path: "/dashboard", location: middleware.LoginPath},
		{name: "signed out may see login", path: "/login"},
		{name: "signed out may see register", path: "/register"},
		{name: "signed in skips login", stored: signedIn, path: "/login", location: middleware.DashboardPath},
		{name: "signed in skips forgot password", stored: signedIn, path: "/forgot-password/sent", location: middleware.DashboardPath},
		{name: "signed in reaches pages", stored: signedIn, path: "/orders"},
		{name: "assets are never gated", path: "/_next/static/app.js"},
		{name: "files with extensions are never gated", path: "/logo.png"},
		{name: "favicon", path: "/favicon.ico"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSessionRouter(t, tt.stored)
			rec := httptest.PerformRequest(t, router, http.MethodGet, tt.path, nil)

			if tt.location == "" {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "page", rec.Body.String())
				return
			}
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

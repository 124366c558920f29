//go:build unit

package gateway_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pos-terminal/internal/gateway"
	"pos-terminal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusServer(t *testing.T, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func breakerClient(srv *httptest.Server) *http.Client {
	rt := gateway.NewBreakerTransport(srv.Client().Transport, gateway.BreakerSettings{
		Name:             "account-api",
		MaxFailures:      2,
		OpenFor:          time.Minute,
		Interval:         time.Minute,
		HalfOpenRequests: 1,
	}, slog.New(slog.DiscardHandler))
	return &http.Client{Transport: rt}
}

func TestBreakerTransport_OpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := statusServer(t, http.StatusBadGateway, &hits)
	client := breakerClient(srv)

	for range 2 {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err, "5xx responses are handed back while the breaker is closed")
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		resp.Body.Close()
	}

	_, err := client.Get(srv.URL)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	assert.Equal(t, int32(2), hits.Load(), "open breaker fails fast")
}

func TestBreakerTransport_IgnoresClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := statusServer(t, http.StatusUnauthorized, &hits)
	client := breakerClient(srv)

	for range 5 {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, int32(5), hits.Load())
}

func TestRateLimitTransport(t *testing.T) {
	t.Run("non-positive rate disables pacing", func(t *testing.T) {
		next := http.DefaultTransport
		assert.Equal(t, next, gateway.NewRateLimitTransport(next, 0, 10))
	})

	t.Run("waiting honours the request context", func(t *testing.T) {
		var hits atomic.Int32
		srv := statusServer(t, http.StatusOK, &hits)
		client := &http.Client{Transport: gateway.NewRateLimitTransport(srv.Client().Transport, 0.001, 1)}

		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		require.NoError(t, err)
		_, err = client.Do(req)
		assert.Error(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})
}

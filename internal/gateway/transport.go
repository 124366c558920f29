package gateway

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pos-terminal/internal/pkg/errs"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// BreakerSettings configures NewBreakerTransport.
type BreakerSettings struct {
	Name             string
	MaxFailures      uint32        // consecutive failures that open the breaker
	OpenFor          time.Duration // how long it stays open before probing
	Interval         time.Duration // closed-state counter reset period
	HalfOpenRequests uint32
}

var errServerFailure = errors.New("upstream server failure")

type breakerTransport struct {
	next http.RoundTripper
	cb   *gobreaker.CircuitBreaker[*http.Response]
}

// NewBreakerTransport trips after repeated transport errors or 5xx responses. 4xx
// responses, 401 included, count as successes so an expired session never opens it.
// While open, requests fail fast with errs.ErrUpstreamUnavailable.
func NewBreakerTransport(next http.RoundTripper, s BreakerSettings, logger *slog.Logger) http.RoundTripper {
	maxFailures := s.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.HalfOpenRequests,
		Interval:    s.Interval,
		Timeout:     s.OpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	return &breakerTransport{next: next, cb: cb}
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.cb.Execute(func() (*http.Response, error) {
		resp, err := t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerFailure
		}
		return resp, nil
	})
	switch {
	case errors.Is(err, errServerFailure):
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
	return resp, err
}

type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// NewRateLimitTransport paces outgoing requests to perSecond with the given burst.
// A non-positive rate returns next unchanged.
func NewRateLimitTransport(next http.RoundTripper, perSecond float64, burst int) http.RoundTripper {
	if perSecond <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitTransport{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

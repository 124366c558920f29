package bootstrap

import (
	"log/slog"
	"net/http"

	"pos-terminal/internal/gateway"
	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/pkg/config"
	"pos-terminal/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		usecase.NewSession,
		NewGateway,
		func(c *gateway.HTTPClient) gateway.Client { return c },
	),
)

func NewGateway(cfg config.Config, store kvstore.Store, session *usecase.Session, logger *slog.Logger) (*gateway.HTTPClient, error) {
	up := cfg.Upstream

	transport := http.DefaultTransport
	if !up.BreakerDisabled {
		transport = gateway.NewBreakerTransport(transport, gateway.BreakerSettings{
			Name:             "account-api",
			MaxFailures:      up.BreakerFailures,
			OpenFor:          up.BreakerOpenFor,
			Interval:         up.BreakerInterval,
			HalfOpenRequests: up.BreakerHalfOpen,
		}, logger)
	}
	transport = gateway.NewRateLimitTransport(transport, up.RateLimit, up.RateBurst)

	return gateway.NewHTTPClient(up.BaseURL, store,
		gateway.WithHTTPClient(&http.Client{Transport: transport, Timeout: up.Timeout}),
		gateway.WithObserver(session),
		gateway.WithTTLs(gateway.TTLs{
			Access:  cfg.Credential.AccessTTL,
			Refresh: cfg.Credential.RefreshTTL,
			UserID:  cfg.Credential.UserIDTTL,
		}),
		gateway.WithLogger(logger),
	)
}

package bootstrap

import (
	"pos-terminal/internal/authstub"
	"pos-terminal/internal/handler/middleware"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/config"
	"pos-terminal/internal/pkg/jwt"
	"pos-terminal/internal/pkg/password"

	"go.uber.org/fx"
)

// StubModule wires the development account service.
var StubModule = fx.Module("authstub",
	fx.Provide(
		config.LoadStubConfig,
		NewJWTService,
		NewStubServer,
	),
)

func NewJWTService(cfg config.StubConfig) *jwt.Service {
	return jwt.NewService(cfg.Secret, cfg.AccessTokenDuration, cfg.RefreshTokenDuration)
}

func NewStubServer(tokens *jwt.Service, cfg config.StubConfig) *authstub.Server {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	return authstub.NewServer(tokens, password.NewDefaultHasher(), clock.NewRealClock(), logger)
}

package bootstrap

import (
	"log/slog"

	"pos-terminal/internal/handler/middleware"
	"pos-terminal/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

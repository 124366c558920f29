package bootstrap

import (
	"pos-terminal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	GatewayModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)

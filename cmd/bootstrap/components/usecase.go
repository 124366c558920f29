package components

import (
	"context"
	"log/slog"

	"pos-terminal/internal/domain/pricing"
	"pos-terminal/internal/handler/api"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/config"
	"pos-terminal/internal/usecase"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"
	"pos-terminal/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(probeSession),
)

var usecaseBaseOption = fx.Provide(
	shared.NewTill,
	NewCalculator,
	func(s *usecase.Session) commands.SessionNotifier { return s },
	func(s *usecase.Session) api.SessionStateReader { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewSettingsCommands,
		func(till *shared.Till, carts commands.CartStore, calc pricing.Calculator, clk clock.Clock, cfg config.Config) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(till, carts, calc, clk, cfg.Checkout.TipPresets)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewSettingsQueries,
	),
)

func NewCalculator(cfg config.Config) (pricing.Calculator, error) {
	rate, err := decimal.NewFromString(cfg.Checkout.DefaultTaxRate)
	if err != nil {
		return nil, err
	}
	return pricing.NewCalculatorWithTaxRate(rate), nil
}

// probeSession settles the session state once the app is up; until then the UI shows a loader.
func probeSession(lc fx.Lifecycle, cmds commands.AuthCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				authenticated := cmds.Probe(ctx)
				logger.Info("session probe finished", "authenticated", authenticated)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

package components

import (
	"log/slog"

	"pos-terminal/internal/handler/middleware"
	"pos-terminal/internal/infra/accountapi"
	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/infra/repository"
	"pos-terminal/internal/pkg/config"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewCatalogRepository,
		repository.NewCartRepository,
		repository.NewPreferencesRepository,
		NewHeldOrderRepository,
		accountapi.NewClient,
	),
	writeSideModule,
	readSideModule,
)

var writeSideModule = fx.Module("repository/write",
	fx.Provide(
		func(r *repository.CatalogRepository) commands.ProductFinder { return r },
		func(r *repository.CartRepository) commands.CartStore { return r },
		func(r *repository.HeldOrderRepository) commands.HeldOrderStore { return r },
		func(r *repository.PreferencesRepository) commands.PreferencesStore { return r },
		func(c *accountapi.Client) commands.AccountAPI { return c },
		func(s kvstore.Store) commands.CredentialStore { return s },
		func(s kvstore.Store) middleware.TokenReader { return s },
	),
)

var readSideModule = fx.Module("repository/read",
	fx.Provide(
		func(r *repository.CatalogRepository) queries.CatalogReadStore { return r },
		func(r *repository.CartRepository) queries.CartReadStore { return r },
		func(r *repository.HeldOrderRepository) queries.HeldOrderReadStore { return r },
		func(r *repository.PreferencesRepository) queries.PreferencesReadStore { return r },
		func(c *accountapi.Client) queries.UserReadStore { return c },
	),
)

func NewHeldOrderRepository(store kvstore.Store, cfg config.Config, logger *slog.Logger) *repository.HeldOrderRepository {
	return repository.NewHeldOrderRepository(store, cfg.Checkout.HeldOrderTTL, logger)
}

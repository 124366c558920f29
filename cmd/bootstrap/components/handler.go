package components

import (
	"pos-terminal/internal/handler"
	"pos-terminal/internal/handler/api"
	"pos-terminal/internal/handler/middleware"
	"pos-terminal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewCatalogHandler,
		api.NewSettingsHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *middleware.Logger
	Session  *middleware.SessionMiddleware
	Auth     *api.AuthHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Catalog  *api.CatalogHandler
	Settings *api.SettingsHandler
}

func registerRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config, p.Logger, handler.Handlers{
		Auth:     p.Auth,
		Cart:     p.Cart,
		Checkout: p.Checkout,
		Catalog:  p.Catalog,
		Settings: p.Settings,
	}, p.Session)
}

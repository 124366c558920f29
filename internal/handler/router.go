package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-terminal/internal/handler/api"
	"pos-terminal/internal/handler/middleware"
	"pos-terminal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Catalog  *api.CatalogHandler
	Settings *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, session *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, session)
	setupPages(engine, cfg.Server.StaticDir, session)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, session *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/session", Handler: h.Auth.Session},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/activation", Handler: h.Auth.Activate},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword},
				{Method: http.MethodPost, Path: "/reset-password/confirm", Handler: h.Auth.ResetPasswordConfirm},
				{Method: http.MethodPost, Path: "/verify-account", Handler: h.Auth.VerifyAccount},
				{Method: http.MethodGet, Path: "/verify-account", Handler: h.Auth.RequestAccountVerification},
				{Method: http.MethodPost, Path: "/social/:provider", Handler: h.Auth.SocialAuthenticate},
			})

			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.Verify, Mw: []gin.HandlerFunc{session.RequireSession()}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{session.RequireSession()}},
			})
		}

		settings := v1.Group("/settings")
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
				{Method: http.MethodPatch, Path: "", Handler: h.Settings.Update},
				{Method: http.MethodPost, Path: "/theme/system", Handler: h.Settings.ResetTheme},
			})
		}

		catalog := v1.Group("/catalog")
		catalog.Use(session.RequireSession())
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.Categories},
				{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.Search},
				{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.Get},
				{Method: http.MethodGet, Path: "/barcodes/:code", Handler: h.Catalog.ByBarcode},
			})
		}

		cart := v1.Group("/cart")
		cart.Use(session.RequireSession())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items/:index", Handler: h.Cart.UpdateQuantity},
				{Method: http.MethodDelete, Path: "/items/:index", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/scan", Handler: h.Cart.Scan},
				{Method: http.MethodPut, Path: "/customer", Handler: h.Cart.SetCustomer},
				{Method: http.MethodPut, Path: "/table", Handler: h.Cart.SetTable},
				{Method: http.MethodPost, Path: "/hold", Handler: h.Cart.Hold},
				{Method: http.MethodGet, Path: "/held", Handler: h.Cart.ListHeld},
				{Method: http.MethodPost, Path: "/held/:id/resume", Handler: h.Cart.ResumeHeld},
				{Method: http.MethodDelete, Path: "/held/:id", Handler: h.Cart.DiscardHeld},
			})
		}

		checkout := v1.Group("/checkout")
		checkout.Use(session.RequireSession())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.Open},
				{Method: http.MethodGet, Path: "", Handler: h.Checkout.Current},
				{Method: http.MethodDelete, Path: "", Handler: h.Checkout.Cancel},
				{Method: http.MethodPut, Path: "/tip", Handler: h.Checkout.SetTip},
				{Method: http.MethodPost, Path: "/split", Handler: h.Checkout.ToggleSplit},
				{Method: http.MethodPut, Path: "/amount", Handler: h.Checkout.SetAmount},
				{Method: http.MethodPut, Path: "/cash", Handler: h.Checkout.SetCashReceived},
				{Method: http.MethodPut, Path: "/method", Handler: h.Checkout.SetMethod},
				{Method: http.MethodPut, Path: "/receipt", Handler: h.Checkout.SetReceipt},
				{Method: http.MethodPost, Path: "/complete", Handler: h.Checkout.Complete},
			})
		}
	}
}

// setupPages serves the till UI behind the route gate. Unknown paths fall back to index.html.
func setupPages(engine *gin.Engine, staticDir string, session *middleware.SessionMiddleware) {
	engine.NoRoute(session.RouteGate(), func(c *gin.Context) {
		if staticDir == "" || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Not found"}})
			return
		}
		name := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

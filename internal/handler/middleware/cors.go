package middleware

import (
	"log/slog"

	"pos-terminal/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the configured till UI origins. With no origins configured the UI
// is expected to be served by posd itself, so cross-origin requests get no CORS headers.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		slog.Info("CORS disabled, till UI served same-origin")
		return func(c *gin.Context) { c.Next() }
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

package bootstrap

import (
	"context"
	"log/slog"

	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewStore,
	),
)

// NewStore opens the terminal's key-value store. The memory driver keeps everything in process
// and loses it on restart; redis keeps credentials and carts across restarts.
func NewStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (kvstore.Store, error) {
	if !cfg.Store.UsesRedis() {
		logger.Info("using in-memory store")
		return kvstore.NewMemoryStore(clk), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Store.RedisAddr,
		Password: cfg.Store.RedisPassword,
		DB:       cfg.Store.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			logger.Info("connected to redis", "addr", cfg.Store.RedisAddr, "db", cfg.Store.RedisDB)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return kvstore.NewRedisStore(client, cfg.Store.KeyPrefix), nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"pos-terminal/cmd/bootstrap"
	"pos-terminal/internal/authstub"
	"pos-terminal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func startStub(lc fx.Lifecycle, server *authstub.Server, cfg config.StubConfig) {
	engine := gin.New()
	engine.Use(gin.Recovery())
	server.Register(engine)

	if email := os.Getenv("STUB_SEED_EMAIL"); email != "" {
		id, err := server.SeedUser("Operator", email, os.Getenv("STUB_SEED_PASSWORD"))
		if err != nil {
			slog.Warn("seed user not created", "email", email, "error", err)
		} else {
			slog.Info("seed user created", "email", email, "id", id.String())
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("starting account stub", "address", srv.Addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("account stub failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	app := fx.New(
		bootstrap.StubModule,
		fx.Invoke(startStub),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start account stub", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop account stub", "error", err)
	}
}

//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pos-terminal/cmd/bootstrap"
	"pos-terminal/cmd/bootstrap/components"
	"pos-terminal/internal/authstub"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/config"
	"pos-terminal/internal/pkg/jwt"
	"pos-terminal/internal/pkg/password"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

const (
	OperatorEmail    = "cashier@example.com"
	OperatorPassword = "password123"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// ------------------------------------------------------------
// Per-suite environment: shared redis container, private key prefix, in-process account stub
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *redis.Client, *authstub.Server) {
	redisInfo := startContainers(t)

	stub, stubURL := startAccountStub(t)

	cfg := createTestConfig(redisInfo, stubURL)
	client := redis.NewClient(&redis.Options{Addr: redisInfo.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready",
		"redis", redisInfo.Addr(),
		"key_prefix", cfg.Store.KeyPrefix,
		"upstream", stubURL)

	return router, cfg, client, stub
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container address")
	return info
}

// startAccountStub runs the development account service in process with a seeded operator.
func startAccountStub(t *testing.T) (*authstub.Server, string) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwt.NewService("e2e-secret", 15*time.Minute, 24*time.Hour)
	stub := authstub.NewServer(tokens, password.NewHasher(bcrypt.MinCost), clock.NewRealClock(), logger)

	_, err := stub.SeedUser("Casey", OperatorEmail, OperatorPassword)
	require.NoError(t, err, "failed to seed operator")

	engine := gin.New()
	stub.Register(engine)
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return stub, server.URL
}

// ------------------------------------------------------------
// Application wiring, same modules as cmd/main.go with a test config
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.GatewayModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fx app started without a router")
	}
	return router, app
}

func createTestConfig(redisInfo ContainerInfo, upstreamURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Upstream.BaseURL = upstreamURL
	cfg.Upstream.RateLimit = 0
	cfg.Store.Driver = "redis"
	cfg.Store.RedisAddr = redisInfo.Addr()
	// suites share the container; a private prefix keeps their keys apart
	cfg.Store.KeyPrefix = "e2e:" + strings.ReplaceAll(uuid.NewString(), "-", "") + ":"
	return cfg
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Redis container, started once per test process
// ------------------------------------------------------------
func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite setup
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	Redis  *redis.Client
	Stub   *authstub.Server
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg, client, stub := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	s.Redis = client
	s.Stub = stub
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupSubTest drops everything the terminal stored under this suite's prefix.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), s.ResetStore(s.T().Context()), "failed to reset store")
}

func (s *SharedSuite) ResetStore(ctx context.Context) error {
	iter := s.Redis.Scan(ctx, 0, s.Config.Store.KeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Redis.Del(ctx, keys...).Err()
}

// RawKey is a terminal store key as it appears in redis.
func (s *SharedSuite) RawKey(key string) string {
	return s.Config.Store.KeyPrefix + key
}

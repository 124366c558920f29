package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between terminals (port, upstream URL, etc.), security settings
// - default: Values common across all terminals (timezone, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Upstream   UpstreamConfig
	Store      StoreConfig
	Credential CredentialConfig
	Checkout   CheckoutConfig
	CORS       CORSConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" required:"true"`
	StaticDir string `envconfig:"STATIC_DIR"`
}

type UpstreamConfig struct {
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"30s"`

	// requests per second, 0 disables pacing
	RateLimit       float64       `envconfig:"UPSTREAM_RATE_LIMIT" default:"20"`
	RateBurst       int           `envconfig:"UPSTREAM_RATE_BURST" default:"10"`
	BreakerFailures uint32        `envconfig:"UPSTREAM_BREAKER_FAILURES" default:"5"`
	BreakerOpenFor  time.Duration `envconfig:"UPSTREAM_BREAKER_OPEN_FOR" default:"30s"`
	BreakerHalfOpen uint32        `envconfig:"UPSTREAM_BREAKER_HALF_OPEN" default:"1"`
	BreakerInterval time.Duration `envconfig:"UPSTREAM_BREAKER_INTERVAL" default:"60s"`
	BreakerDisabled bool          `envconfig:"UPSTREAM_BREAKER_DISABLED" default:"false"`
}

type StoreConfig struct {
	Driver        string `envconfig:"STORE_DRIVER" default:"memory"` // memory | redis
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix     string `envconfig:"STORE_KEY_PREFIX" default:"pos:"`
}

type CredentialConfig struct {
	AccessTTL  time.Duration `envconfig:"CREDENTIAL_ACCESS_TTL" default:"72h"`
	RefreshTTL time.Duration `envconfig:"CREDENTIAL_REFRESH_TTL" default:"168h"`
	UserIDTTL  time.Duration `envconfig:"CREDENTIAL_USER_ID_TTL" default:"168h"`
}

type CheckoutConfig struct {
	DefaultTaxRate string        `envconfig:"CHECKOUT_DEFAULT_TAX_RATE" default:"0.08"`
	TipPresets     []int         `envconfig:"CHECKOUT_TIP_PRESETS" default:"15,18,20,25"`
	HeldOrderTTL   time.Duration `envconfig:"CHECKOUT_HELD_ORDER_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// StubConfig configures the local stand-in for the account API.
type StubConfig struct {
	Port                 string        `envconfig:"STUB_PORT" default:"8000"`
	Secret               string        `envconfig:"STUB_JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"STUB_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"STUB_REFRESH_TOKEN_DURATION" default:"168h"`
	Log                  LogConfig
}

func (c *StoreConfig) UsesRedis() bool {
	return c.Driver == "redis"
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadStubConfig() (StubConfig, error) {
	var cfg StubConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return StubConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			BaseURL:         "http://127.0.0.1:18000",
			Timeout:         5 * time.Second,
			BreakerFailures: 5,
			BreakerOpenFor:  time.Second,
			BreakerHalfOpen: 1,
			BreakerInterval: time.Minute,
		},
		Store: StoreConfig{
			Driver:    "memory",
			KeyPrefix: "test:",
		},
		Credential: CredentialConfig{
			AccessTTL:  72 * time.Hour,
			RefreshTTL: 7 * 24 * time.Hour,
			UserIDTTL:  7 * 24 * time.Hour,
		},
		Checkout: CheckoutConfig{
			DefaultTaxRate: "0.08",
			TipPresets:     []int{15, 18, 20, 25},
			HeldOrderTTL:   time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}

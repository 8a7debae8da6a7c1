package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AuthConfig holds the authentication core settings. The signing secret has
// no default: it must come from the environment and is never logged.
type AuthConfig struct {
	JWTSecret            string        `env:"JWT_SECRET, required"`
	TokenTTL             time.Duration `env:"TOKEN_TTL,  default=24h"`
	RateLimitWindow      time.Duration `env:"RATE_LIMIT_WINDOW,       default=15m"`
	RateLimitMaxAttempts int           `env:"RATE_LIMIT_MAX_ATTEMPTS, default=3"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

// RedisConfig selects the rate-limiter backend. An empty Addr disables Redis
// and the limiter falls back to in-process counters.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

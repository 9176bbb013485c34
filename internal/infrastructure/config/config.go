package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookie. Required outside development.
	SessionSecret string        `env:"SESSION_SECRET, default=dev-session-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=24h"`
	// VerifyInterval bounds how stale a cached identity may get before the
	// next request re-checks it against /auth/me.
	VerifyInterval time.Duration `env:"VERIFY_INTERVAL, default=1m"`

	Backend BackendConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8080/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BackendURL is the base of the remote INVOKE API; the login endpoint
	// lives at /api/users/login underneath it.
	BackendURL  string        `env:"BACKEND_URL,  default=http://localhost:5000"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=15s"`

	// DemoJWTSecret signs the tokens minted for demo-table logins.
	DemoJWTSecret string `env:"DEMO_JWT_SECRET, default=invoke-demo-secret"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// File is the durable session record location used when no Redis
	// backend is configured.
	File string `env:"SESSION_FILE, default=.invoke_auth.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Package app is the composition root: it wires the credential table, the
// remote authenticator, the session store, and the authenticated HTTP client
// from configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/invoke-consulting/hours-system/internal/core/ports"
	"github.com/invoke-consulting/hours-system/internal/core/service"
	"github.com/invoke-consulting/hours-system/internal/infrastructure/backend"
	"github.com/invoke-consulting/hours-system/internal/infrastructure/credentials"
	"github.com/invoke-consulting/hours-system/internal/infrastructure/httpclient"
	"github.com/invoke-consulting/hours-system/internal/infrastructure/session"
	"github.com/invoke-consulting/hours-system/internal/pkg/config"
)

const redisPingTimeout = 5 * time.Second

// App bundles the assembled auth subsystem.
type App struct {
	Auth     ports.AuthService
	Sessions *session.Store
	Client   *httpclient.Client

	redis *redis.Client
}

// New assembles the auth subsystem. The durable session area is Redis when
// REDIS_ADDR is set, otherwise the session file.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	creds, err := credentials.NewStaticStore(credentials.DefaultSeeds(), cfg.DemoJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("build credential store: %w", err)
	}

	a := &App{}

	var durable session.Backend
	if cfg.Redis.Addr != "" {
		rdb, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		durable = session.NewRedisBackend(rdb)
	} else {
		durable = session.NewFileBackend(cfg.Session.File)
	}

	sessions := session.NewStore(durable, session.NewMemoryBackend(), log)
	remote := backend.NewAuthenticator(cfg.BackendURL, cfg.HTTPTimeout, log)

	a.Sessions = sessions
	a.Auth = service.NewAuthService(creds, remote, sessions, log)
	a.Client = httpclient.New(sessions, nil)
	return a, nil
}

// Close releases the Redis connection when one was opened.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

// connectRedis initialises a Redis client and validates connectivity with a ping.
func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

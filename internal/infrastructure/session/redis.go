package session

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/invoke-consulting/hours-system/internal/core/domain"
)

// RedisBackend is a durable storage area backed by Redis, for deployments
// where the client runs server-side and restarts must not drop the session.
// The key expires with the session TTL; the store still checks the record's
// own timestamp on load.
type RedisBackend struct {
	client *redis.Client
	key    string
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client, key: domain.SessionKey}
}

func (r *RedisBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisBackend) Write(ctx context.Context, data []byte) error {
	return r.client.Set(ctx, r.key, data, domain.SessionTTL).Err()
}

func (r *RedisBackend) Delete(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

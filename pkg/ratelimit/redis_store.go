package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces marker keys so they cannot collide with other users
// of the same Redis database.
const keyPrefix = "sitenotify:marker:"

// RedisStore implements Store on Redis SET NX with expiry, which gives the
// atomic check-and-set the interface requires across processes.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed marker store.
// The caller owns the client lifecycle.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}

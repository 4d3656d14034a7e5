package adapter

import (
	"context"
	"errors"

	"career-passport/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStoreAdapter implements domain.KeyValueStore on a Redis server.
// Values never expire.
type RedisStoreAdapter struct {
	client *redis.Client
}

// NewRedisStoreAdapter expects a connected *redis.Client.
func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

// Get translates redis.Nil to domain.ErrKeyNotFound.
func (r *RedisStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

func (r *RedisStoreAdapter) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Remove deletes key. A missing key is not an error.
func (r *RedisStoreAdapter) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping checks the health of the Redis server.
func (r *RedisStoreAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStoreAdapter) Close() error {
	return r.client.Close()
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gazelia/storefront/internal/pkg/database"
)

// RedisStore implements Store on top of the shared Redis client
type RedisStore struct {
	redisClient *database.RedisClient
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(redisClient *database.RedisClient) *RedisStore {
	return &RedisStore{redisClient: redisClient}
}

// Get retrieves a value by key
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a value with the given TTL
func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, key, value, ttl); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

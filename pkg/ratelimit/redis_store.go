package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a shared counter backend for multi-instance deployments.
// Each window is a Redis key named after the window's start time, so all
// instances increment the same counter and expiry is handled by Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store. An empty prefix defaults to "rl:".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "rl:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Increment adds one request to the key's current fixed window.
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	windowStart := time.Now().UTC().Truncate(window)
	resetAt := windowStart.Add(window)
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowStart.Unix())

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}

	// Set expiry on the first hit of the window; a small grace period keeps
	// the key around through clock skew between instances.
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window+time.Second).Err(); err != nil {
			return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
		}
	}

	return count, resetAt, nil
}

package ratelimit

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a CounterStore backed by Redis, for deployments where
// several instances must share one quota. INCR gives the atomic
// increment-and-read; the key TTL marks the window boundary.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix overrides the key prefix (default "ratelimit").
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = strings.Trim(prefix, ":") }
}

// NewRedisStore creates a Redis-backed counter store.
func NewRedisStore(rdb *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{rdb: rdb, prefix: "ratelimit"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Incr implements CounterStore. The first hit in a window sets the key TTL;
// subsequent hits read the remaining TTL to report the reset time.
func (s *RedisStore) Incr(ctx context.Context, policy, key string, window time.Duration) (int, time.Time, error) {
	k := s.prefix + ":" + policy + ":" + key

	pipe := s.rdb.Pipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	count := int(incr.Val())
	remaining := ttl.Val()
	if remaining < 0 {
		// Fresh window: PTTL reports no expiry until we set one.
		if err := s.rdb.Expire(ctx, k, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		remaining = window
	}
	return count, time.Now().Add(remaining), nil
}

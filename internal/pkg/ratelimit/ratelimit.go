// Package ratelimit provides a Redis-backed request throttle.
//
// Business code should depend on the Limiter interface so throttling can be
// swapped or faked in tests. The FixedWindow implementation counts hits per
// key inside a rolling window keyed by expiry.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether an operation identified by key may proceed.
type Limiter interface {
	// Allow reports whether the key is under its limit and records the hit.
	Allow(ctx context.Context, key string) (bool, error)
}

// FixedWindow implements Limiter using INCR with a window-scoped TTL.
type FixedWindow struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewFixedWindow constructs a FixedWindow limiter.
//
// limit is the number of allowed hits per window. Non-positive inputs fall
// back to 5 hits per minute.
func NewFixedWindow(client *redis.Client, limit int, window time.Duration) *FixedWindow {
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = time.Minute
	}

	return &FixedWindow{
		client: client,
		prefix: "ratelimit:",
		limit:  int64(limit),
		window: window,
	}
}

// Allow reports whether the key is under its limit and records the hit.
func (l *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	fk := l.prefix + key

	count, err := l.client.Incr(ctx, fk).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, fk, l.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= l.limit, nil
}

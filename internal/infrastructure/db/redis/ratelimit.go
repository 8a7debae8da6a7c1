package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mercadillo/storefront/internal/core/ports"
)

const (
	attemptKeyPrefix  = "authlimit:"
	defaultMaxAttempt = 3
	defaultWindow     = 15 * time.Minute
)

// AttemptLimiter is a fixed-window rate limiter backed by Redis. The counter
// for a client key is created with the window TTL on its first increment;
// once it passes the maximum, every further attempt is denied until the key
// expires. Redis INCR is atomic, so concurrent attempts from the same client
// never undercount.
type AttemptLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewAttemptLimiter(client *redis.Client, max int, window time.Duration) *AttemptLimiter {
	if max <= 0 {
		max = defaultMaxAttempt
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &AttemptLimiter{client: client, max: max, window: window}
}

func (l *AttemptLimiter) Allow(ctx context.Context, key string) (ports.RateLimitResult, error) {
	k := attemptKeyPrefix + key

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return ports.RateLimitResult{}, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return ports.RateLimitResult{}, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	if int(count) > l.max {
		ttl, err := l.client.TTL(ctx, k).Result()
		if err != nil || ttl < 0 {
			ttl = l.window
		}
		return ports.RateLimitResult{Allowed: false, RetryAfter: ttl}, nil
	}

	return ports.RateLimitResult{Allowed: true, Remaining: l.max - int(count)}, nil
}

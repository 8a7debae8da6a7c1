package ports

import (
	"context"
	"time"
)

// RateLimitResult reports one limiter decision.
type RateLimitResult struct {
	Allowed bool
	// Remaining is the number of attempts left in the current window.
	Remaining int
	// RetryAfter is how long the client must wait when denied.
	RetryAfter time.Duration
}

// RateLimiter bounds how often a client key (typically an IP address) may
// attempt an operation within a fixed time window. Counters reset once the
// window elapses; no persistence across restarts is required.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

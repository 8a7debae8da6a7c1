package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mercadillo/storefront/internal/core/ports"
)

const (
	defaultMaxAttempt = 3
	defaultWindow     = 15 * time.Minute
)

type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window rate limiter held in process memory, used when no
// Redis backend is configured. Counters do not survive restarts and are not
// shared across instances. A single mutex serializes all counter updates so
// concurrent attempts from the same client never undercount.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*window

	// now is swappable for tests.
	now func() time.Time
}

func NewLimiter(max int, windowDur time.Duration) *Limiter {
	if max <= 0 {
		max = defaultMaxAttempt
	}
	if windowDur <= 0 {
		windowDur = defaultWindow
	}
	return &Limiter{
		max:     max,
		window:  windowDur,
		entries: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *Limiter) Allow(_ context.Context, key string) (ports.RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.entries[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.window)}
		l.entries[key] = w
	}

	if w.count >= l.max {
		return ports.RateLimitResult{Allowed: false, RetryAfter: w.resetAt.Sub(now)}, nil
	}

	w.count++
	return ports.RateLimitResult{Allowed: true, Remaining: l.max - w.count}, nil
}

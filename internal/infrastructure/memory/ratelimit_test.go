package memory

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLimiter_DeniesFourthAttempt(t *testing.T) {
	limiter := NewLimiter(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(context.Background(), "10.0.0.1")
		if err != nil {
			t.Fatalf("allow %d: %v", i+1, err)
		}
		if !res.Allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	res, err := limiter.Allow(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if res.Allowed {
		t.Fatalf("4th attempt should be denied")
	}
	if res.RetryAfter <= 0 || res.RetryAfter > 15*time.Minute {
		t.Fatalf("unexpected retry-after: %v", res.RetryAfter)
	}
}

func TestLimiter_WindowReset(t *testing.T) {
	limiter := NewLimiter(3, 15*time.Minute)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 4; i++ {
		_, _ = limiter.Allow(context.Background(), "10.0.0.1")
	}

	// Just short of the window boundary: still denied.
	current = current.Add(15*time.Minute - time.Second)
	res, _ := limiter.Allow(context.Background(), "10.0.0.1")
	if res.Allowed {
		t.Fatalf("attempt inside window should be denied")
	}

	// Past the boundary: counter resets.
	current = current.Add(2 * time.Second)
	res, _ = limiter.Allow(context.Background(), "10.0.0.1")
	if !res.Allowed {
		t.Fatalf("attempt after window elapsed should be allowed")
	}
	if res.Remaining != 2 {
		t.Fatalf("expected 2 remaining after reset, got %d", res.Remaining)
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, time.Minute)

	if res, _ := limiter.Allow(context.Background(), "10.0.0.1"); !res.Allowed {
		t.Fatalf("first key should be allowed")
	}
	if res, _ := limiter.Allow(context.Background(), "10.0.0.1"); res.Allowed {
		t.Fatalf("first key should now be denied")
	}
	if res, _ := limiter.Allow(context.Background(), "10.0.0.2"); !res.Allowed {
		t.Fatalf("second key must not be affected")
	}
}

func TestLimiter_ConcurrentAttemptsNeverUndercount(t *testing.T) {
	const attempts = 50
	limiter := NewLimiter(3, time.Minute)

	var wg sync.WaitGroup
	allowed := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(context.Background(), "10.0.0.1")
			if err == nil && res.Allowed {
				allowed <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for range allowed {
		count++
	}
	if count != 3 {
		t.Fatalf("expected exactly 3 allowed attempts, got %d", count)
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/core/ports"
)

type stubLimiter struct {
	result ports.RateLimitResult
	err    error
	keys   []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (ports.RateLimitResult, error) {
	l.keys = append(l.keys, key)
	return l.result, l.err
}

func limiterContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimit_Allowed(t *testing.T) {
	limiter := &stubLimiter{result: ports.RateLimitResult{Allowed: true, Remaining: 2}}
	c, rec := limiterContext()

	called := false
	handler := RateLimit(limiter)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] == "" {
		t.Fatalf("expected one non-empty client key, got %v", limiter.keys)
	}
}

func TestRateLimit_Denied(t *testing.T) {
	limiter := &stubLimiter{result: ports.RateLimitResult{Allowed: false, RetryAfter: 5 * time.Minute}}
	c, _ := limiterContext()

	handler := RateLimit(limiter)(func(c echo.Context) error {
		t.Fatalf("denied request must not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}
}

func TestRateLimit_BackendError(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis down")}
	c, _ := limiterContext()

	handler := RateLimit(limiter)(func(c echo.Context) error {
		t.Fatalf("should not reach next on limiter error")
		return nil
	})

	if err := handler(c); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

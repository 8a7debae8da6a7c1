package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/api/metrics"
	"github.com/mercadillo/storefront/internal/core/ports"
)

// RateLimit guards an endpoint with the per-client attempt limiter, keyed by
// the originating IP. Denied requests answer 429 with a retry hint and never
// reach the handler, so a denied login attempt is not counted against the
// credential store.
func RateLimit(limiter ports.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}

			if !res.Allowed {
				metrics.RateLimitedTotal.Inc()
				retry := res.RetryAfter.Round(time.Second)
				if retry <= 0 {
					retry = time.Second
				}
				return echo.NewHTTPError(http.StatusTooManyRequests,
					fmt.Sprintf("too many attempts, retry in %s", retry))
			}

			return next(c)
		}
	}
}

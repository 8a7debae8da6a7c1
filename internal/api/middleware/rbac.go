package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after Session;
// a valid session with the wrong role fails with Forbidden, which is distinct
// from the unauthenticated outcome.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

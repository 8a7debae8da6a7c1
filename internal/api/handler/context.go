package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/api/middleware"
)

// identity is the caller identity recovered from the session token by the
// Session middleware.
type identity struct {
	Username    string `json:"username"`
	DisplayName string `json:"name"`
	Role        string `json:"role"`
	AvatarRef   string `json:"avatar,omitempty"`
}

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call: a non-empty username proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (identity, error) {
	id := identity{}
	id.Username, _ = c.Get(middleware.CtxUsername).(string)
	if id.Username == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	id.DisplayName, _ = c.Get(middleware.CtxDisplayName).(string)
	id.Role, _ = c.Get(middleware.CtxRole).(string)
	id.AvatarRef, _ = c.Get(middleware.CtxAvatarRef).(string)
	return id, nil
}

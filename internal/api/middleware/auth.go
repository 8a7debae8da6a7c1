package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/core/token"
)

// TokenCookie is the cookie carrying the session token, set at login.
const TokenCookie = "token"

// Context keys populated by Session for downstream handlers.
const (
	CtxUsername    = "username"
	CtxDisplayName = "name"
	CtxRole        = "role"
	CtxAvatarRef   = "avatar"
)

// Session requires a valid session token on the request. The token travels in
// the "token" cookie; an Authorization: Bearer header is accepted as a
// fallback for API clients. On success the verified claims are attached to
// the echo context. A missing token and an invalid/expired one both fail
// with 401; the response message differs only for diagnostics.
func Session(tokens *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return err
			}

			c.Set(CtxUsername, claims.Username)
			c.Set(CtxDisplayName, claims.DisplayName)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxAvatarRef, claims.AvatarRef)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

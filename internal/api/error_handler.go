package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// is populated only for aggregated validation failures.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, 429 from the
	// limiter middleware, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Aggregated field validation: every failing field in one response.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: "validation failed", Details: ve.Fields}
	}

	// Known domain errors → deterministic HTTP codes. Invalid credentials
	// and invalid token deliberately share one terse message each; they
	// never reveal whether the username or the password was wrong.
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, errorResponse{Error: "missing credentials"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorResponse{Error: "invalid token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, errorResponse{Error: "too many attempts"}
	case errors.Is(err, domain.ErrDuplicateUser):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorResponse{Error: "product not found"}
	case errors.Is(err, domain.ErrDuplicateProduct):
		return http.StatusConflict, errorResponse{Error: "product already exists"}
	}

	// Unexpected error (store unreachable and friends): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}

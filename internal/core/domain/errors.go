package domain

import (
	"errors"
	"strings"
)

var (
	// ErrMissingCredentials is returned when a login request omits the
	// username or password entirely.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers absent, malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("access forbidden")
	ErrRateLimited  = errors.New("too many attempts")

	ErrDuplicateUser = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")

	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already exists")
)

// ValidationError aggregates every failing field of a request payload so the
// client sees all problems at once instead of the first one.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

package ports

import (
	"context"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account. Field-level
// validation (lengths, email format, age) happens at the HTTP boundary;
// the service only enforces invariants it owns.
type RegisterInput struct {
	Username    string
	DisplayName string
	Password    string
	Email       string
	Age         int
	Role        string
	AvatarRef   string
}

// AuthService defines the authentication use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed session token plus
	// the account. Unknown username and wrong password are indistinguishable
	// to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

package ports

import (
	"context"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// UserRepository defines persistence for registered accounts. Implementations
// must guarantee username uniqueness and surface violations as
// domain.ErrDuplicateUser.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UsernamesByRole lists the usernames of every account holding role.
	UsernamesByRole(ctx context.Context, role string) ([]string, error)
}

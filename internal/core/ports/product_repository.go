package ports

import (
	"context"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// ProductRepository defines persistence for catalog entries, keyed by the
// unique product ref.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByRef(ctx context.Context, ref string) (*domain.Product, error)
	// List returns the whole catalog ordered by ref.
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, ref string) error
}

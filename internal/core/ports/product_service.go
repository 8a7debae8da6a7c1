package ports

import (
	"context"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// ProductInput carries the writable fields of a catalog entry.
type ProductInput struct {
	Ref   string
	Name  string
	Price float64
	Stock int
}

// ProductService defines the catalog use cases.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Get(ctx context.Context, ref string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, ref string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, ref string) error
}

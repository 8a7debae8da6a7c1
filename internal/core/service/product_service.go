package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercadillo/storefront/internal/core/domain"
	"github.com/mercadillo/storefront/internal/core/ports"
)

// ProductService implements the catalog use cases.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Ref:       input.Ref,
		Name:      input.Name,
		Price:     input.Price,
		Stock:     input.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("ref", created.Ref).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, ref string) (*domain.Product, error) {
	return s.repo.FindByRef(ctx, ref)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Update replaces the writable fields of the product identified by ref. The
// ref itself is immutable; the path parameter wins over any ref in the body.
func (s *ProductService) Update(ctx context.Context, ref string, input ports.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Price = input.Price
	existing.Stock = input.Stock
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("ref", ref).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, ref string) error {
	if err := s.repo.Delete(ctx, ref); err != nil {
		return err
	}
	s.logger.Info().Str("ref", ref).Msg("product deleted")
	return nil
}

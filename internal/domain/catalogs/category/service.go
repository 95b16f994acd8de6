package category

import (
	"context"

	"salestrack/internal/core/tx"
	"salestrack/internal/domain"
)

// Service provides business logic for categories.
// Duplicate names are rejected by the unique constraint, not by a lookup,
// so concurrent creates cannot both succeed.
type Service struct {
	*domain.CatalogService[*Category]
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "category",
		}),
		repo: repo,
	}
}

// CreateNamed inserts a category with the given display name.
func (s *Service) CreateNamed(ctx context.Context, displayName string) (*Category, error) {
	c := NewCategory(displayName)
	if err := s.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListAll returns every category. Categories are few, so the list is not paginated.
func (s *Service) ListAll(ctx context.Context) ([]*Category, error) {
	return s.repo.ListAll(ctx)
}

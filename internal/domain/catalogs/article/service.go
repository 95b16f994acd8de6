package article

import (
	"context"

	"salestrack/internal/core/id"
	"salestrack/internal/core/tx"
	"salestrack/internal/domain"
)

// Service provides business logic for articles.
type Service struct {
	*domain.CatalogService[*Article]
}

// NewService creates a new Article service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Article]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "article",
		}),
	}
}

// Patch applies p to the article with the given id and returns the stored row.
// Changing the cost changes the margins reported for past sales.
func (s *Service) Patch(ctx context.Context, articleID id.ID, p Patch) (*Article, error) {
	var out *Article
	err := s.TxManager().RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := s.GetByID(ctx, articleID)
		if err != nil {
			return err
		}
		if p.IsEmpty() {
			out = a
			return nil
		}

		p.Apply(a)
		if err := s.Update(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

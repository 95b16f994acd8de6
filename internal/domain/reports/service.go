package reports

import (
	"context"
	"fmt"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/tx"
)

// Service provides report generation operations.
type Service struct {
	repo      Repository
	txManager tx.ReadOnlyManager
}

// NewService creates a new reports service.
func NewService(repo Repository, txm tx.ReadOnlyManager) *Service {
	return &Service{repo: repo, txManager: txm}
}

// Revenue returns one page of the per-article revenue aggregation.
// The count and the page are read in one read-only transaction.
func (s *Service) Revenue(ctx context.Context, filter RevenueFilter) (RevenuePage, error) {
	filter.ListFilter = filter.ListFilter.Normalize()

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return RevenuePage{}, apperror.NewFieldValidation("from", "from must not be after to")
	}

	var page RevenuePage
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		page, err = s.repo.Revenue(ctx, filter)
		return err
	})
	if err != nil {
		return RevenuePage{}, fmt.Errorf("revenue report: %w", err)
	}
	return page, nil
}

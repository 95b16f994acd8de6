package sales

import (
	"context"
	"fmt"

	"salestrack/internal/core/apperror"
	appctx "salestrack/internal/core/context"
	"salestrack/internal/core/id"
	"salestrack/internal/core/tx"
	"salestrack/internal/core/types"
	"salestrack/internal/domain"
	"salestrack/pkg/logger"
)

// Service implements the sale ledger operations.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new sale service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, txManager: txm}
}

// Create records a sale authored by the user in ctx.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Sale, error) {
	authorID := appctx.GetUserID(ctx)
	if id.IsNil(authorID) {
		return nil, apperror.NewUnauthorized("authenticated user required")
	}

	sale := &Sale{
		AuthorID:         authorID,
		ArticleID:        in.ArticleID,
		Quantity:         in.Quantity,
		UnitSellingPrice: in.UnitSellingPrice,
	}
	if err := sale.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, sale); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale recorded",
		"sale_id", sale.ID,
		"article_id", sale.ArticleID,
		"revenue", types.FormatMoney(sale.Revenue()))
	return sale, nil
}

// Get retrieves a sale by id.
func (s *Service) Get(ctx context.Context, saleID id.ID) (*Sale, error) {
	return s.repo.GetByID(ctx, saleID)
}

// List returns one page of sales, optionally restricted to one author.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	filter.ListFilter = filter.ListFilter.Normalize()
	return s.repo.List(ctx, filter)
}

// Update changes quantity and/or unit selling price. An empty update returns
// the sale unchanged.
func (s *Service) Update(ctx context.Context, saleID id.ID, u Update) (*Sale, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return s.repo.GetByID(ctx, saleID)
	}

	var out *Sale
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		updated, err := s.repo.Update(ctx, saleID, u)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a sale.
func (s *Service) Delete(ctx context.Context, saleID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, saleID)
	})
}

// Import records a batch of sales authored by the user in ctx, all or nothing.
// Every input is validated before anything is written.
func (s *Service) Import(ctx context.Context, inputs []CreateInput) (int64, error) {
	authorID := appctx.GetUserID(ctx)
	if id.IsNil(authorID) {
		return 0, apperror.NewUnauthorized("authenticated user required")
	}
	if len(inputs) == 0 {
		return 0, nil
	}

	batch := make([]*Sale, 0, len(inputs))
	revenue := types.Zero()
	for i, in := range inputs {
		sale := &Sale{
			AuthorID:         authorID,
			ArticleID:        in.ArticleID,
			Quantity:         in.Quantity,
			UnitSellingPrice: in.UnitSellingPrice,
		}
		if err := sale.Validate(ctx); err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				return 0, appErr.WithDetail("index", i)
			}
			return 0, err
		}
		batch = append(batch, sale)
		revenue = revenue.Add(sale.Revenue())
	}

	var n int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.repo.Import(ctx, batch)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("import sales: %w", err)
	}

	logger.Info(ctx, "sales imported",
		"count", n,
		"author_id", authorID,
		"revenue", types.FormatMoney(revenue))
	return n, nil
}

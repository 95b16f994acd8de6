package sales

import (
	"context"

	"salestrack/internal/core/id"
	"salestrack/internal/domain"
)

// Repository defines persistence for sales.
type Repository interface {
	// Create inserts s. Date and id are assigned by the store and written back.
	Create(ctx context.Context, s *Sale) error

	// GetByID retrieves a sale or a NOT_FOUND error.
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)

	// Update writes only the fields set in u and returns the stored row.
	Update(ctx context.Context, saleID id.ID, u Update) (*Sale, error)

	// Delete removes a sale or returns NOT_FOUND.
	Delete(ctx context.Context, saleID id.ID) error

	// List returns one page ordered by unit selling price descending, then id.
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error)

	// Import bulk-inserts already validated sales and returns the row count.
	// Stored ids and dates are not written back.
	Import(ctx context.Context, batch []*Sale) (int64, error)
}

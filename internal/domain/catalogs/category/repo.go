package category

import (
	"context"

	"salestrack/internal/domain"
)

// Repository defines the interface for Category persistence.
type Repository interface {
	domain.CatalogRepository[*Category]

	// ListAll returns every category ordered by id.
	ListAll(ctx context.Context) ([]*Category, error)
}

package article

import (
	"salestrack/internal/domain"
)

// Repository defines the interface for Article persistence.
// List is ordered by category then id.
type Repository interface {
	domain.CatalogRepository[*Article]
}

package users

import (
	"context"

	"salestrack/internal/domain"
)

// Repository defines the interface for User persistence.
type Repository interface {
	domain.CatalogRepository[*User]

	// GetByEmail looks a user up by lowercased email.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

package entity

import (
	"context"
	"time"

	"salestrack/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// BaseEntity contains the columns every table carries.
// Both are assigned by the database and filled from INSERT ... RETURNING.
type BaseEntity struct {
	ID        id.ID     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GetID returns the primary key.
func (b *BaseEntity) GetID() id.ID {
	return b.ID
}

// IsNew reports whether the entity has not been persisted yet.
func (b *BaseEntity) IsNew() bool {
	return id.IsNil(b.ID)
}

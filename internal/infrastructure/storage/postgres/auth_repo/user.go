// Package auth_repo provides the PostgreSQL user repository.
package auth_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"salestrack/internal/domain/users"
	"salestrack/internal/infrastructure/storage/postgres"
)

const userTable = "users"

var _ users.Repository = (*UserRepo)(nil)

// UserRepo implements users.Repository.
// Deleting a user who authored sales fails with PROTECTED_REFERENCE.
type UserRepo struct {
	*postgres.BaseRepo[*users.User]
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{
		BaseRepo: postgres.NewBaseRepo(txm, postgres.TableSpec{
			Table:     userTable,
			Entity:    "user",
			Columns:   postgres.ExtractDBColumns[users.User](),
			Generated: []string{"id", "created_at"},
			OrderBy:   []string{"id ASC"},
		}, func() *users.User { return &users.User{} }),
	}
}

// GetByEmail retrieves user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.FindOne(ctx, r.BaseSelect().Where(squirrel.Eq{"email": email}).Limit(1), email)
}

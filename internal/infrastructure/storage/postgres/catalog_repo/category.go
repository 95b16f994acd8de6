// Package catalog_repo provides PostgreSQL implementations for the category
// and article repositories.
package catalog_repo

import (
	"context"

	"salestrack/internal/domain/catalogs/category"
	"salestrack/internal/infrastructure/storage/postgres"
)

const categoryTable = "categories"

var _ category.Repository = (*CategoryRepo)(nil)

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	*postgres.BaseRepo[*category.Category]
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txm *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		BaseRepo: postgres.NewBaseRepo(txm, postgres.TableSpec{
			Table:     categoryTable,
			Entity:    "category",
			Columns:   postgres.ExtractDBColumns[category.Category](),
			Generated: []string{"id", "created_at"},
			OrderBy:   []string{"id ASC"},
		}, func() *category.Category { return &category.Category{} }),
	}
}

// ListAll returns every category ordered by id.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*category.Category, error) {
	return r.FindAll(ctx, r.BaseSelect().OrderBy(r.Spec().OrderBy...))
}

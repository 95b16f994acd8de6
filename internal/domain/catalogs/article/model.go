// Package article provides the Article catalog: sellable items with a
// manufacturing cost, each belonging to exactly one category.
package article

import (
	"context"
	"strings"
	"unicode/utf8"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/entity"
	"salestrack/internal/core/id"
	"salestrack/internal/core/types"
)

const (
	// MaxCodeLength mirrors articles.code VARCHAR(6).
	MaxCodeLength = 6
	// MaxNameLength mirrors articles.name VARCHAR(255).
	MaxNameLength = 255
)

// Article is a sellable item. Code is unique and cannot change after creation.
type Article struct {
	entity.BaseEntity
	Code              string      `db:"code" json:"code"`
	Name              string      `db:"name" json:"name"`
	CategoryID        id.ID       `db:"category_id" json:"category"`
	ManufacturingCost types.Money `db:"manufacturing_cost" json:"manufacturing_cost"`
}

// NewArticle creates an Article with required fields.
func NewArticle(code, name string, categoryID id.ID, cost types.Money) *Article {
	return &Article{
		Code:              code,
		Name:              name,
		CategoryID:        categoryID,
		ManufacturingCost: cost,
	}
}

// Validate implements entity.Validatable.
// A zero cost is rejected because margins divide by it.
func (a *Article) Validate(ctx context.Context) error {
	a.Code = strings.TrimSpace(a.Code)
	a.Name = strings.TrimSpace(a.Name)

	switch n := utf8.RuneCountInString(a.Code); {
	case n == 0:
		return apperror.NewFieldValidation("code", "code is required")
	case n > MaxCodeLength:
		return apperror.NewFieldValidation("code", "code is too long").
			WithDetail("max_length", MaxCodeLength)
	}

	switch n := utf8.RuneCountInString(a.Name); {
	case n == 0:
		return apperror.NewFieldValidation("name", "name is required")
	case n > MaxNameLength:
		return apperror.NewFieldValidation("name", "name is too long").
			WithDetail("max_length", MaxNameLength)
	}

	if id.IsNil(a.CategoryID) {
		return apperror.NewFieldValidation("category", "category is required")
	}

	if err := types.ValidateMoney(a.ManufacturingCost, false); err != nil {
		return apperror.NewFieldValidation("manufacturing_cost", "manufacturing cost "+err.Error())
	}

	return nil
}

// Patch lists the fields an article update may change.
// Nil fields are left unchanged. Code cannot change.
type Patch struct {
	Name              *string
	CategoryID        *id.ID
	ManufacturingCost *types.Money
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.CategoryID == nil && p.ManufacturingCost == nil
}

// Apply copies the set fields onto a.
func (p Patch) Apply(a *Article) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.CategoryID != nil {
		a.CategoryID = *p.CategoryID
	}
	if p.ManufacturingCost != nil {
		a.ManufacturingCost = *p.ManufacturingCost
	}
}

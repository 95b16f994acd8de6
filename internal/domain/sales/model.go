// Package sales provides the Sale ledger.
//
// A sale's date is assigned by the database on insert and its author is the
// authenticated caller. Neither can change afterwards: the only mutable fields
// are quantity and unit selling price.
package sales

import (
	"context"
	"time"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/entity"
	"salestrack/internal/core/id"
	"salestrack/internal/core/types"
	"salestrack/internal/domain"
)

// Sale is one recorded transaction.
type Sale struct {
	entity.BaseEntity
	Date             time.Time   `db:"date" json:"date"`
	AuthorID         id.ID       `db:"author_id" json:"author"`
	ArticleID        id.ID       `db:"article_id" json:"article"`
	Quantity         int64       `db:"quantity" json:"quantity"`
	UnitSellingPrice types.Money `db:"unit_selling_price" json:"unit_selling_price"`
}

// Revenue returns quantity times unit selling price.
func (s *Sale) Revenue() types.Money {
	return s.UnitSellingPrice.Mul(types.NewMoneyFromInt(s.Quantity))
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if id.IsNil(s.ArticleID) {
		return apperror.NewFieldValidation("article", "article is required")
	}
	if err := validateQuantity(s.Quantity); err != nil {
		return err
	}
	return validatePrice(s.UnitSellingPrice)
}

// CreateInput carries the client-supplied fields of a new sale.
type CreateInput struct {
	ArticleID        id.ID
	Quantity         int64
	UnitSellingPrice types.Money
}

// Update lists the fields a sale update may change. Nil fields are left unchanged.
type Update struct {
	Quantity         *int64
	UnitSellingPrice *types.Money
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	return u.Quantity == nil && u.UnitSellingPrice == nil
}

// Validate checks the values that are set.
func (u Update) Validate() error {
	if u.Quantity != nil {
		if err := validateQuantity(*u.Quantity); err != nil {
			return err
		}
	}
	if u.UnitSellingPrice != nil {
		if err := validatePrice(*u.UnitSellingPrice); err != nil {
			return err
		}
	}
	return nil
}

// ListFilter narrows the sale list.
type ListFilter struct {
	domain.ListFilter

	// AuthorID restricts the list to sales recorded by one user.
	AuthorID *id.ID
}

func validateQuantity(q int64) error {
	if q < 0 {
		return apperror.NewFieldValidation("quantity", "quantity must not be negative")
	}
	return nil
}

func validatePrice(p types.Money) error {
	if err := types.ValidateMoney(p, true); err != nil {
		return apperror.NewFieldValidation("unit_selling_price", "unit selling price "+err.Error())
	}
	return nil
}

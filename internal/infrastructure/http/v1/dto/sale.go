package dto

import (
	"time"

	"salestrack/internal/core/id"
	"salestrack/internal/core/types"
	"salestrack/internal/domain/sales"
)

// CreateSaleRequest is the body of POST /sales.
// Author and date are never read from the request. Quantity and price are
// pointers so that an absent field fails binding while an explicit 0 passes.
type CreateSaleRequest struct {
	ArticleID        id.ID        `json:"article" binding:"required"`
	Quantity         *int64       `json:"quantity" binding:"required"`
	UnitSellingPrice *types.Money `json:"unit_selling_price" binding:"required"`
}

// ToInput must only be called on a request that passed binding.
func (r CreateSaleRequest) ToInput() sales.CreateInput {
	return sales.CreateInput{
		ArticleID:        r.ArticleID,
		Quantity:         *r.Quantity,
		UnitSellingPrice: *r.UnitSellingPrice,
	}
}

// ImportSalesRequest is the body of POST /sales/import.
type ImportSalesRequest struct {
	Sales []CreateSaleRequest `json:"sales" binding:"required,min=1,max=5000,dive"`
}

func (r ImportSalesRequest) ToInputs() []sales.CreateInput {
	out := make([]sales.CreateInput, 0, len(r.Sales))
	for _, s := range r.Sales {
		out = append(out, s.ToInput())
	}
	return out
}

type ImportSalesResponse struct {
	Imported int64 `json:"imported"`
}

// UpdateSaleRequest is the body of PUT /sales/:id.
type UpdateSaleRequest struct {
	Quantity         *int64       `json:"quantity"`
	UnitSellingPrice *types.Money `json:"unit_selling_price"`
}

// ImmutableSaleFields are rejected in update bodies with VALIDATION_ERROR.
var ImmutableSaleFields = []string{"id", "author", "date", "article"}

func (r UpdateSaleRequest) ToUpdate() sales.Update {
	return sales.Update{
		Quantity:         r.Quantity,
		UnitSellingPrice: r.UnitSellingPrice,
	}
}

type SaleResponse struct {
	ID               id.ID     `json:"id"`
	Date             string    `json:"date"`
	AuthorID         id.ID     `json:"author"`
	ArticleID        id.ID     `json:"article"`
	Quantity         int64     `json:"quantity"`
	UnitSellingPrice string    `json:"unit_selling_price"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromSale(s *sales.Sale) SaleResponse {
	return SaleResponse{
		ID:               s.ID,
		Date:             FormatDate(s.Date),
		AuthorID:         s.AuthorID,
		ArticleID:        s.ArticleID,
		Quantity:         s.Quantity,
		UnitSellingPrice: types.FormatMoney(s.UnitSellingPrice),
		CreatedAt:        s.CreatedAt,
	}
}

// Package sale_repo provides the PostgreSQL implementation of the sale ledger.
//
// The date column is filled by DEFAULT CURRENT_DATE and author_id is written on
// insert only. No statement built here ever sets either one afterwards.
package sale_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/id"
	"salestrack/internal/domain"
	"salestrack/internal/domain/sales"
	"salestrack/internal/infrastructure/storage/postgres"
)

const saleTable = "sales"

var _ sales.Repository = (*SaleRepo)(nil)

// importColumns are the columns written by Import; the rest take their defaults.
var importColumns = []string{"author_id", "article_id", "quantity", "unit_selling_price"}

// SaleRepo implements sales.Repository.
type SaleRepo struct {
	*postgres.BaseRepo[*sales.Sale]
	txm *postgres.TxManager
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseRepo: postgres.NewBaseRepo(txm, postgres.TableSpec{
			Table:     saleTable,
			Entity:    "sale",
			Columns:   postgres.ExtractDBColumns[sales.Sale](),
			Generated: []string{"id", "created_at", "date"},
			Immutable: []string{"author_id", "article_id"},
			OrderBy:   []string{"unit_selling_price DESC", "id ASC"},
		}, func() *sales.Sale { return &sales.Sale{} }),
		txm: txm,
	}
}

// updateQuery sets only the fields present in u.
func (r *SaleRepo) updateQuery(saleID id.ID, u sales.Update) squirrel.UpdateBuilder {
	q := postgres.Builder().
		Update(saleTable).
		Where(squirrel.Eq{"id": saleID}).
		Suffix(r.Returning())

	if u.Quantity != nil {
		q = q.Set("quantity", *u.Quantity)
	}
	if u.UnitSellingPrice != nil {
		q = q.Set("unit_selling_price", *u.UnitSellingPrice)
	}
	return q
}

// Update writes quantity and/or unit_selling_price and returns the stored row.
func (r *SaleRepo) Update(ctx context.Context, saleID id.ID, u sales.Update) (*sales.Sale, error) {
	if u.IsEmpty() {
		return r.GetByID(ctx, saleID)
	}

	sql, args, err := r.updateQuery(saleID, u).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var s sales.Sale
	if err := pgxscan.Get(ctx, r.Querier(ctx), &s, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID)
		}
		return nil, postgres.TranslateWriteError(fmt.Errorf("update sale: %w", err), "sale")
	}
	return &s, nil
}

// listQuery selects sales matching filter, without ordering or pagination.
func (r *SaleRepo) listQuery(filter sales.ListFilter) squirrel.SelectBuilder {
	q := r.BaseSelect()
	if filter.AuthorID != nil {
		q = q.Where(squirrel.Eq{"author_id": *filter.AuthorID})
	}
	return q
}

// List returns one page ordered by unit selling price descending, then id.
func (r *SaleRepo) List(ctx context.Context, filter sales.ListFilter) (domain.ListResult[*sales.Sale], error) {
	return r.ListWhere(ctx, filter.ListFilter, r.listQuery(filter))
}

func importRows(batch []*sales.Sale) [][]any {
	rows := make([][]any, 0, len(batch))
	for _, s := range batch {
		rows = append(rows, []any{s.AuthorID, s.ArticleID, s.Quantity, s.UnitSellingPrice})
	}
	return rows
}

// Import bulk-inserts batch with COPY.
func (r *SaleRepo) Import(ctx context.Context, batch []*sales.Sale) (int64, error) {
	n, err := r.txm.CopyFrom(ctx, saleTable, importColumns, importRows(batch))
	if err != nil {
		return 0, postgres.TranslateWriteError(err, "sale")
	}
	return n, nil
}

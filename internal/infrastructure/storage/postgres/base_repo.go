package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/id"
	"salestrack/internal/domain"
)

// Identifiable is satisfied by pointers to structs embedding entity.BaseEntity.
type Identifiable interface {
	GetID() id.ID
}

// TableSpec describes how an entity maps onto its table.
type TableSpec struct {
	// Table is the SQL table name.
	Table string
	// Entity is the name used in API errors ("article", "sale").
	Entity string
	// Columns lists every selected column, normally ExtractDBColumns[T]().
	Columns []string
	// Generated columns are assigned by the database and never written.
	Generated []string
	// Immutable columns are written on INSERT only.
	Immutable []string
	// OrderBy is the deterministic ordering for List.
	OrderBy []string
}

// BaseRepo provides common CRUD operations over one table.
// Embed it in entity-specific repositories.
type BaseRepo[T Identifiable] struct {
	txm   *TxManager
	spec  TableSpec
	newFn func() T
}

// NewBaseRepo creates a new base repository.
func NewBaseRepo[T Identifiable](txm *TxManager, spec TableSpec, newFn func() T) *BaseRepo[T] {
	if len(spec.OrderBy) == 0 {
		spec.OrderBy = []string{"id ASC"}
	}
	return &BaseRepo[T]{txm: txm, spec: spec, newFn: newFn}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier returns the transaction from ctx or the pool.
func (r *BaseRepo[T]) Querier(ctx context.Context) Querier {
	return r.txm.GetQuerier(ctx)
}

// Spec returns the table description.
func (r *BaseRepo[T]) Spec() TableSpec {
	return r.spec
}

// Returning is the RETURNING clause listing every column.
func (r *BaseRepo[T]) Returning() string {
	return "RETURNING " + strings.Join(r.spec.Columns, ", ")
}

// BaseSelect creates a SELECT of all columns from the table.
func (r *BaseRepo[T]) BaseSelect() squirrel.SelectBuilder {
	return Builder().
		Select(r.spec.Columns...).
		From(r.spec.Table)
}

// InsertQuery builds the INSERT for entity, returning every column.
func (r *BaseRepo[T]) InsertQuery(entity T) squirrel.InsertBuilder {
	return Builder().
		Insert(r.spec.Table).
		SetMap(StructToMap(entity, r.spec.Generated...)).
		Suffix(r.Returning())
}

// UpdateQuery builds the UPDATE for entity, writing only mutable columns.
func (r *BaseRepo[T]) UpdateQuery(entity T) squirrel.UpdateBuilder {
	exclude := append(append([]string{}, r.spec.Generated...), r.spec.Immutable...)
	return Builder().
		Update(r.spec.Table).
		SetMap(StructToMap(entity, exclude...)).
		Where(squirrel.Eq{"id": entity.GetID()}).
		Suffix(r.Returning())
}

// Create inserts entity and scans generated columns back into it.
func (r *BaseRepo[T]) Create(ctx context.Context, entity T) error {
	sql, args, err := r.InsertQuery(entity).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		return TranslateWriteError(fmt.Errorf("insert %s: %w", r.spec.Table, err), r.spec.Entity)
	}
	return nil
}

// Update writes the mutable columns of entity and refreshes it from the row.
func (r *BaseRepo[T]) Update(ctx context.Context, entity T) error {
	sql, args, err := r.UpdateQuery(entity).ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return apperror.NewNotFound(r.spec.Entity, entity.GetID())
		}
		return TranslateWriteError(fmt.Errorf("update %s: %w", r.spec.Table, err), r.spec.Entity)
	}
	return nil
}

// GetByID retrieves entity by ID.
func (r *BaseRepo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	return r.FindOne(ctx, r.BaseSelect().Where(squirrel.Eq{"id": entityID}).Limit(1), entityID)
}

// FindOne executes q and scans a single row. notFoundID is reported when no row matches.
func (r *BaseRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder, notFoundID any) (T, error) {
	entity := r.newFn()

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.spec.Entity, notFoundID)
		}
		return entity, fmt.Errorf("get %s: %w", r.spec.Table, err)
	}
	return entity, nil
}

// FindAll executes q and scans every row.
func (r *BaseRepo[T]) FindAll(ctx context.Context, q squirrel.SelectBuilder) ([]T, error) {
	items := []T{}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", r.spec.Table, err)
	}
	return items, nil
}

// List retrieves one page of rows ordered by TableSpec.OrderBy.
func (r *BaseRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	return r.ListWhere(ctx, filter, r.BaseSelect())
}

// ListWhere paginates q, which must select the entity columns.
// The total count is taken over q before LIMIT/OFFSET.
func (r *BaseRepo[T]) ListWhere(ctx context.Context, filter domain.ListFilter, q squirrel.SelectBuilder) (domain.ListResult[T], error) {
	result := domain.NewListResult[T](filter)

	total, err := Count(ctx, r.Querier(ctx), q)
	if err != nil {
		return result, fmt.Errorf("count %s: %w", r.spec.Table, err)
	}
	result.TotalCount = total

	if total == 0 {
		return result, nil
	}

	items, err := r.FindAll(ctx, Paginate(q.OrderBy(r.spec.OrderBy...), filter))
	if err != nil {
		return result, err
	}
	result.Items = items
	return result, nil
}

// Delete performs physical removal from the database.
func (r *BaseRepo[T]) Delete(ctx context.Context, entityID id.ID) error {
	sql, args, err := Builder().
		Delete(r.spec.Table).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return TranslateDeleteError(fmt.Errorf("delete %s: %w", r.spec.Table, err), r.spec.Entity, entityID)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.spec.Entity, entityID)
	}
	return nil
}

// Count wraps q in SELECT COUNT(*) FROM (q) sub.
func Count(ctx context.Context, querier Querier, q squirrel.SelectBuilder) (int64, error) {
	sql, args, err := CountQuery(q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := querier.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CountQuery returns the COUNT(*) wrapper for q.
func CountQuery(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	return Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")
}

// Paginate applies the filter's LIMIT and OFFSET to q.
func Paginate(q squirrel.SelectBuilder, filter domain.ListFilter) squirrel.SelectBuilder {
	q = q.Limit(filter.Limit())
	if offset := filter.Offset(); offset > 0 {
		q = q.Offset(offset)
	}
	return q
}

// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"salestrack/internal/core/entity"
	"salestrack/internal/core/id"
)

// --- Pagination ---

// PageSize is the fixed number of rows returned per page by every paginated list.
const PageSize = 25

// ListFilter contains common pagination options for list operations.
// Page is 1-based.
type ListFilter struct {
	Page     int
	PageSize int
}

// DefaultListFilter returns the first page.
func DefaultListFilter() ListFilter {
	return ListFilter{Page: 1, PageSize: PageSize}
}

// Normalize clamps Page and PageSize to usable values.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = PageSize
	}
	return f
}

// Limit returns the row limit for the page.
func (f ListFilter) Limit() uint64 {
	return uint64(f.Normalize().PageSize)
}

// Offset returns the number of rows skipped before the page.
func (f ListFilter) Offset() uint64 {
	n := f.Normalize()
	return uint64((n.Page - 1) * n.PageSize)
}

// ListResult contains one page of results plus the total row count.
type ListResult[T any] struct {
	Items      []T
	TotalCount int64
	Page       int
	PageSize   int
}

// NewListResult creates an empty result for the filter's page.
func NewListResult[T any](filter ListFilter) ListResult[T] {
	n := filter.Normalize()
	return ListResult[T]{
		Items:    []T{},
		Page:     n.Page,
		PageSize: n.PageSize,
	}
}

// TotalPages returns the number of pages needed for TotalCount rows.
func (r ListResult[T]) TotalPages() int {
	if r.PageSize <= 0 || r.TotalCount == 0 {
		return 0
	}
	return int((r.TotalCount + int64(r.PageSize) - 1) / int64(r.PageSize))
}

// HasNext reports whether a page follows this one.
func (r ListResult[T]) HasNext() bool {
	return r.Page < r.TotalPages()
}

// HasPrevious reports whether a page precedes this one.
func (r ListResult[T]) HasPrevious() bool {
	return r.Page > 1
}

// --- Repository Interfaces ---

// CatalogRepository defines CRUD operations for reference-data entities.
type CatalogRepository[T entity.Validatable] interface {
	// Create inserts a new entity and fills its generated columns.
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Update writes the mutable columns of an existing entity.
	Update(ctx context.Context, entity T) error

	// Delete physically removes the row. Rows still referenced through a
	// RESTRICT foreign key yield a PROTECTED_REFERENCE error.
	Delete(ctx context.Context, id id.ID) error

	// List retrieves one page of entities.
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	BeforeUpdate HookEvent = "before_update"
	BeforeDelete HookEvent = "before_delete"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event, stopping at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook to run before create.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.On(BeforeCreate, hook)
}

// OnBeforeUpdate registers a hook to run before update.
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) {
	r.On(BeforeUpdate, hook)
}

// OnBeforeDelete registers a hook to run before delete.
func (r *HookRegistry[T]) OnBeforeDelete(hook Hook[T]) {
	r.On(BeforeDelete, hook)
}

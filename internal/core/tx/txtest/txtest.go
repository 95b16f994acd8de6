// Package txtest provides a tx.Manager for service unit tests.
package txtest

import (
	"context"

	"salestrack/internal/core/tx"
)

var _ tx.ReadOnlyManager = (*Manager)(nil)

// Manager runs every callback inline and records how it was invoked.
type Manager struct {
	Calls         int
	ReadOnlyCalls int
}

// RunInTransaction calls fn with ctx unchanged.
func (m *Manager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// ReadOnly calls fn with ctx unchanged.
func (m *Manager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.ReadOnlyCalls++
	return fn(ctx)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// copier is satisfied by both pgx.Tx and *pgxpool.Pool.
type copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// CopyFrom bulk-inserts rows with the COPY protocol, inside the transaction in
// ctx when there is one. Each row must match columns positionally.
// Columns left out receive their DEFAULT.
func (m *TxManager) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	var c copier = m.pool
	if t := m.txFromContext(ctx); t != nil {
		c = t
	}

	n, err := c.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("copy into %s: %w", table, err)
	}
	return n, nil
}

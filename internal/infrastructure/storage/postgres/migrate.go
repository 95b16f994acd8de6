package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"salestrack/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationLockID serializes concurrent Migrate calls across processes.
const migrationLockID = 72_410_001

// Migration is one versioned schema change.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// LoadMigrations returns the embedded migrations sorted by version.
// Files are named NNNN_description.sql.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var out []Migration
	seen := make(map[int]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}

		base := strings.TrimSuffix(e.Name(), ".sql")
		num, desc, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %q: expected NNNN_description.sql", e.Name())
		}
		version, err := strconv.Atoi(num)
		if err != nil || version <= 0 {
			return nil, fmt.Errorf("migration %q: invalid version", e.Name())
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migration version %d used by %q and %q", version, prev, e.Name())
		}
		seen[version] = e.Name()

		body, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		out = append(out, Migration{
			Version:     version,
			Description: strings.ReplaceAll(desc, "_", " "),
			SQL:         string(body),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// MigrationStatus reports the applied and latest schema versions.
type MigrationStatus struct {
	Current int
	Latest  int
	Pending []Migration
}

// Migrate applies all pending migrations, each in its own transaction.
func Migrate(ctx context.Context, txm *TxManager) (MigrationStatus, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return MigrationStatus{}, err
	}

	var status MigrationStatus
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := txm.GetQuerier(ctx)
		if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockID); err != nil {
			return fmt.Errorf("acquire migration lock: %w", err)
		}
		if err := ensureMigrationsTable(ctx, q); err != nil {
			return err
		}

		current, err := currentVersion(ctx, q)
		if err != nil {
			return err
		}
		status.Current = current

		for _, m := range migrations {
			if m.Version <= current {
				continue
			}
			if _, err := q.Exec(ctx, m.SQL); err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
			}
			if _, err := q.Exec(ctx,
				"INSERT INTO schema_migrations (version, description) VALUES ($1, $2)",
				m.Version, m.Description,
			); err != nil {
				return fmt.Errorf("record migration %d: %w", m.Version, err)
			}
			logger.Info(ctx, "applied migration", "version", m.Version, "description", m.Description)
			status.Current = m.Version
		}
		return nil
	})
	if err != nil {
		return status, err
	}

	if len(migrations) > 0 {
		status.Latest = migrations[len(migrations)-1].Version
	}
	return status, nil
}

// Status reports the schema version without applying anything.
func Status(ctx context.Context, txm *TxManager) (MigrationStatus, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return MigrationStatus{}, err
	}

	var status MigrationStatus
	err = txm.ReadOnly(ctx, func(ctx context.Context) error {
		q := txm.GetQuerier(ctx)

		var exists bool
		if err := q.QueryRow(ctx, "SELECT to_regclass('schema_migrations') IS NOT NULL").Scan(&exists); err != nil {
			return fmt.Errorf("check schema_migrations: %w", err)
		}
		if !exists {
			return nil
		}

		current, err := currentVersion(ctx, q)
		status.Current = current
		return err
	})
	if err != nil {
		return status, err
	}

	for _, m := range migrations {
		if m.Version > status.Current {
			status.Pending = append(status.Pending, m)
		}
		status.Latest = m.Version
	}
	return status, nil
}

func ensureMigrationsTable(ctx context.Context, q Querier) error {
	_, err := q.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version     INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func currentVersion(ctx context.Context, q Querier) (int, error) {
	var v int
	if err := q.QueryRow(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

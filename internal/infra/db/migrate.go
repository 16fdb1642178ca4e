package db

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"facility-booking/internal/pkg/errs"

	_ "github.com/lib/pq" // PostgreSQL driver
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    text PRIMARY KEY,
	applied_at timestamptz NOT NULL DEFAULT now()
)`

// Migrate applies every embedded migration that is not yet recorded in schema_migrations.
// Each file runs in its own transaction.
func Migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return errs.Wrap(err, "failed to open migration connection")
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, createMigrationsTable); err != nil {
		return errs.Wrap(err, "failed to create schema_migrations")
	}

	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(strings.TrimPrefix(name, "migrations/"), ".sql")
		applied, err := isApplied(ctx, conn, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			return errs.Wrapf(err, "failed to read migration %s", version)
		}
		if err := apply(ctx, conn, version, string(body)); err != nil {
			return err
		}
		logger.Info("applied migration", "version", version)
	}
	return nil
}

func isApplied(ctx context.Context, conn *sql.DB, version string) (bool, error) {
	var exists bool
	err := conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, errs.Wrapf(err, "failed to check migration %s", version)
	}
	return exists, nil
}

func apply(ctx context.Context, conn *sql.DB, version, body string) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(err, "failed to begin migration")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, body); err != nil {
		return errs.Wrapf(err, "migration %s failed", version)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
		return errs.Wrapf(err, "failed to record migration %s", version)
	}
	return tx.Commit()
}

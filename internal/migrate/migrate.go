// Package migrate applies the embedded SQL migrations in file-name order.
// Each file runs in its own transaction together with its ledger row, so a
// failed migration rolls back completely and a rerun of the full sequence
// is a no-op.
package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"valletta-hr-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerTable = `
	CREATE TABLE IF NOT EXISTS migrations (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`

// Run applies all pending migrations from fsys.
func Run(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	if _, err := pool.Exec(ctx, ledgerTable); err != nil {
		return fmt.Errorf("failed to create migrations ledger: %w", err)
	}

	rows, err := pool.Query(ctx, `SELECT name FROM migrations ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to read migrations ledger: %w", err)
	}
	defer rows.Close()

	var applied []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		applied = append(applied, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	files, err := listMigrationFiles(fsys)
	if err != nil {
		return err
	}

	for _, name := range Pending(files, applied) {
		sql, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		if err := applyOne(ctx, pool, name, string(sql)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		logger.Log.Info("Applied migration", "name", name)
	}

	return nil
}

// applyOne runs one migration and its ledger insert in a single transaction.
func applyOne(ctx context.Context, pool *pgxpool.Pool, name, sql string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, sql); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO migrations (name) VALUES ($1)`, name); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func listMigrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Pending returns the migration files not yet recorded in the ledger,
// preserving file order.
func Pending(files, applied []string) []string {
	seen := make(map[string]bool, len(applied))
	for _, name := range applied {
		seen[name] = true
	}

	var pending []string
	for _, name := range files {
		if !seen[name] {
			pending = append(pending, name)
		}
	}
	return pending
}

package history

import (
	"context"
	"fmt"
)

type migration struct {
	version    string
	statements []string
}

var migrations = []migration{
	{
		version: "0001_create_conversions",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS conversions (
                id TEXT PRIMARY KEY,
                save_path TEXT NOT NULL,
                game_version TEXT NOT NULL,
                mod_count INTEGER NOT NULL,
                rml_path TEXT,
                csv_path TEXT,
                created_at TEXT NOT NULL
            )`,
			`CREATE INDEX IF NOT EXISTS idx_conversions_created_at
                ON conversions (created_at)`,
		},
	},
}

func (s *Store) applyMigrations(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)"); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	for _, mig := range migrations {
		var count int
		row := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE version = ?", mig.version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration version: %w", err)
		}
		if count > 0 {
			continue
		}
		for _, statement := range mig.statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("apply migration %s: %w", mig.version, err)
			}
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", mig.version); err != nil {
			return fmt.Errorf("record migration %s: %w", mig.version, err)
		}
	}

	return tx.Commit()
}

package runhistory

import (
	"context"
	"database/sql"
	"fmt"
)

type migration struct {
	version string
	sql     string
}

// migrations is applied in order inside applyMigrations. The teacher embeds
// its migrations as standalone .sql files (internal/queue/migrations/*.sql);
// this package inlines the (much smaller) schema directly since there is no
// migrations directory to embed here.
var migrations = []migration{
	{
		version: "0001_runs",
		sql: `
CREATE TABLE runs (
	id TEXT PRIMARY KEY,
	root_path TEXT NOT NULL,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	file_count INTEGER NOT NULL
);

CREATE TABLE run_files (
	run_id TEXT NOT NULL REFERENCES runs(id),
	file_path TEXT NOT NULL,
	original_count INTEGER NOT NULL,
	final_count INTEGER NOT NULL,
	duration_adjustments INTEGER NOT NULL,
	rebalanced_pairs INTEGER NOT NULL,
	anticipated_cues INTEGER NOT NULL,
	min_duration_repairs INTEGER NOT NULL,
	gap_repairs INTEGER NOT NULL,
	chronology_fixes INTEGER NOT NULL,
	structural_removals INTEGER NOT NULL,
	processing_time_ms INTEGER NOT NULL
);

CREATE INDEX idx_run_files_run_id ON run_files(run_id);
`,
	},
}

func applyMigrations(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)"); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int
		row := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE version = ?", m.version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration version: %w", err)
		}
		if count > 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.version, err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("record migration %s: %w", m.version, err)
		}
	}

	return tx.Commit()
}

package runhistory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"subtuner/internal/stats"
)

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db *sql.DB
}

// FileResult is one file's outcome within a run.
type FileResult struct {
	Path   string
	Report stats.Report
}

// Run is a past batch or single-file optimize invocation.
type Run struct {
	ID         string
	RootPath   string
	StartedAt  time.Time
	FinishedAt time.Time
	Files      []FileResult
}

// Open initializes or connects to the run-history database and applies
// migrations.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure run history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if err := applyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun persists a completed run and its per-file results as a new UUID
// primary key, returning the generated run ID.
func (s *Store) RecordRun(ctx context.Context, rootPath string, startedAt, finishedAt time.Time, files []FileResult) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin run tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, root_path, started_at, finished_at, file_count) VALUES (?, ?, ?, ?, ?)`,
		id, rootPath, startedAt.UTC().Format(time.RFC3339Nano), finishedAt.UTC().Format(time.RFC3339Nano), len(files),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, f := range files {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_files (
				run_id, file_path, original_count, final_count,
				duration_adjustments, rebalanced_pairs, anticipated_cues,
				min_duration_repairs, gap_repairs, chronology_fixes,
				structural_removals, processing_time_ms
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, f.Path, f.Report.OriginalCount, f.Report.FinalCount,
			f.Report.DurationAdjustments, f.Report.RebalancedPairs, f.Report.AnticipatedCues,
			f.Report.MinDurationRepairs, f.Report.GapRepairs, f.Report.ChronologyFixes,
			f.Report.StructuralRemovals, f.Report.ProcessingTime.Milliseconds(),
		)
		if err != nil {
			return "", fmt.Errorf("insert run file %s: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first, without their
// per-file detail.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root_path, started_at, finished_at FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.RootPath, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns a single run's full detail, including per-file reports.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, root_path, started_at, finished_at FROM runs WHERE id = ?`, id)

	var run Run
	var started, finished string
	if err := row.Scan(&run.ID, &run.RootPath, &started, &finished); err != nil {
		return nil, fmt.Errorf("scan run %s: %w", id, err)
	}
	run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
	run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)

	rows, err := s.db.QueryContext(ctx,
		`SELECT file_path, original_count, final_count, duration_adjustments,
			rebalanced_pairs, anticipated_cues, min_duration_repairs, gap_repairs,
			chronology_fixes, structural_removals, processing_time_ms
		FROM run_files WHERE run_id = ? ORDER BY file_path`, id)
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f FileResult
		var processingMS int64
		if err := rows.Scan(
			&f.Path, &f.Report.OriginalCount, &f.Report.FinalCount,
			&f.Report.DurationAdjustments, &f.Report.RebalancedPairs, &f.Report.AnticipatedCues,
			&f.Report.MinDurationRepairs, &f.Report.GapRepairs, &f.Report.ChronologyFixes,
			&f.Report.StructuralRemovals, &processingMS,
		); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		f.Report.ProcessingTime = time.Duration(processingMS) * time.Millisecond
		run.Files = append(run.Files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &run, nil
}

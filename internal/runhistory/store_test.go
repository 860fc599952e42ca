package runhistory_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"subtuner/internal/runhistory"
	"subtuner/internal/stats"
)

func openTestStore(t *testing.T) *runhistory.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := runhistory.Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenAppliesMigrations(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	started := time.Now().Add(-time.Minute)
	finished := time.Now()
	files := []runhistory.FileResult{
		{Path: "movie.srt", Report: stats.Report{OriginalCount: 10, FinalCount: 9, StructuralRemovals: 1}},
	}

	id, err := store.RecordRun(ctx, "/media/movies", started, finished, files)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty run ID")
	}

	run, err := store.GetRun(ctx, id)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run.RootPath != "/media/movies" {
		t.Fatalf("RootPath = %q, want /media/movies", run.RootPath)
	}
	if len(run.Files) != 1 {
		t.Fatalf("len(run.Files) = %d, want 1", len(run.Files))
	}
	if run.Files[0].Report.OriginalCount != 10 || run.Files[0].Report.StructuralRemovals != 1 {
		t.Fatalf("unexpected file report: %+v", run.Files[0].Report)
	}
}

func TestListRunsOrdersNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	firstID, err := store.RecordRun(ctx, "/a", base, base.Add(time.Second), nil)
	if err != nil {
		t.Fatalf("RecordRun(1): %v", err)
	}
	secondID, err := store.RecordRun(ctx, "/b", base.Add(time.Minute), base.Add(2*time.Minute), nil)
	if err != nil {
		t.Fatalf("RecordRun(2): %v", err)
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].ID != secondID || runs[1].ID != firstID {
		t.Fatalf("expected newest-first ordering, got %q then %q", runs[0].ID, runs[1].ID)
	}
}

func TestGetRunUnknownIDFails(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetRun(context.Background(), "does-not-exist"); err == nil {
		t.Fatal("expected an error for an unknown run ID")
	}
}

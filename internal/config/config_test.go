package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValidAfterNormalize(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadWithoutFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.toml")

	cfg, resolved, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing file")
	}
	if resolved != missing {
		t.Fatalf("resolved = %q, want %q", resolved, missing)
	}
	if cfg.Optimizer.CharsPerSec != 20 {
		t.Fatalf("CharsPerSec = %v, want default 20", cfg.Optimizer.CharsPerSec)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subtuner.toml")
	contents := `
log_level = "debug"
batch_concurrency = 8

[optimizer]
chars_per_sec = 25.0
min_duration = 1.0
max_duration = 8.0
min_gap = 0.05
short_threshold = 0.8
long_threshold = 3.0
max_anticipation = 0.5
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Optimizer.CharsPerSec != 25.0 {
		t.Fatalf("CharsPerSec = %v, want 25.0", cfg.Optimizer.CharsPerSec)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.BatchConcurrency != 8 {
		t.Fatalf("BatchConcurrency = %d, want 8", cfg.BatchConcurrency)
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unsupported log_format")
	}
}

func TestValidateRejectsInvalidOptimizerConfig(t *testing.T) {
	cfg := Default()
	cfg.Optimizer.MinDuration = cfg.Optimizer.MaxDuration
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected optimizer cross-field validation to fail")
	}
}

func TestExpandPathResolvesHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	got, err := ExpandPath("~/subtuner-test")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := filepath.Join(home, "subtuner-test")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample file not written: %v", err)
	}
}

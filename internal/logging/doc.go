// Package logging assembles structured slog loggers and formatting helpers used
// across the subtuner CLI and batch runner.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so CLI and batch code can
// automatically tag log lines with the subtitle file being processed, the
// active pipeline pass, and the batch run ID. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// The optimization pipeline itself (internal/optimize) never logs — per its
// contract it self-corrects into internal/stats, and only the orchestrator's
// callers (cmd/subtuner, internal/batchrun) emit log lines.
//
// # Logging Contract
//
// Level semantics:
//   - INFO: narrative milestones (run started, file optimized, report written).
//   - WARN: degraded behavior (a cue could not be repaired and was retained as-is).
//   - ERROR: operation failed (parse failure, write failure, configuration error).
//   - DEBUG: per-pass counters and raw diagnostics.
//
// INFO and WARN logs should include event_type; WARN additionally sets impact
// to describe the user-facing consequence. Use WarnWithContext()/
// ErrorWithContext() to enforce this consistently.
//
// # Common Fields
//
// Identity: item_id (file), stage (pipeline pass or CLI stage), run_id (batch run)
// Progress: progress_stage, progress_percent, progress_message
// Events: event_type
// Errors: error_kind, error_operation, error_code
package logging

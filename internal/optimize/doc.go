// Package optimize implements the four-pass subtitle retiming pipeline:
// duration extension, rebalance, anticipation, and validation, sequenced by
// an orchestrator (Run). Each pass is a pure, deterministic function from a
// cue sequence and config to a new cue sequence of the same length; see
// duration.go, rebalance.go, anticipate.go, and validate.go for the
// per-pass contracts, which follow spec.md §4 exactly.
//
// Grounded on the teacher's stage-sequencing idiom
// (internal/workflow/manager_stage.go: a fixed sequence of named steps over
// shared state) and on original_source/subtuner/optimization/engine.py,
// which the passes themselves are a direct Go port of
// (duration_adjuster.py, rebalancer.py, anticipator.py, validator.py).
package optimize

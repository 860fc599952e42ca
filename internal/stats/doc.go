// Package stats implements the write-only statistics collector threaded
// through every optimization pass (spec.md §3.5, §6.3).
//
// Collector is a passive record: it has no behavior that feeds back into the
// pipeline, mirroring the teacher's pattern of passing a mutable handle
// (internal/logging's EventArchive before trimming, internal/queue.Store)
// through call chains instead of relying on package-level state. Field
// grouping (duration/rebalance/anticipation/validation) follows
// original_source/subtuner/optimization/statistics.py's
// OptimizationStatistics dataclass.
package stats

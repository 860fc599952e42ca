package optimize

import (
	"fmt"

	"subtuner/internal/cue"
	"subtuner/internal/overlap"
	"subtuner/internal/stats"
)

// Run sequences the four passes over input and returns the optimized
// sequence together with the statistics collected along the way
// (spec.md §4.6). It is the only component that crosses pass boundaries;
// it does not re-validate between passes.
//
// An invalid cfg fails fast before any pass runs (spec.md §7). An empty
// input is not an error: it yields an empty sequence and a zeroed report.
func Run(input []cue.Cue, cfg Config) ([]cue.Cue, stats.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, stats.Report{}, fmt.Errorf("invalid optimizer configuration: %w", err)
	}

	stat := stats.New()
	stat.OriginalCount = len(input)

	if len(input) == 0 {
		stat.StartTiming()
		stat.StopTiming()
		return []cue.Cue{}, stat.Snapshot(), nil
	}

	snapshot := make([]cue.Cue, len(input))
	copy(snapshot, input)

	registry := overlap.Compute(snapshot)

	stat.StartTiming()
	v1 := durationPass(snapshot, cfg, stat, registry)
	v2 := rebalancePass(v1, cfg, stat)
	v3 := anticipatePass(v2, cfg, stat)
	out := validatePass(v3, cfg, stat, registry)
	stat.StopTiming()

	stat.FinalCount = len(out)
	return out, stat.Snapshot(), nil
}

package optimize

import (
	"subtuner/internal/cue"
	"subtuner/internal/overlap"
	"subtuner/internal/stats"
)

// validatePass enforces minimum duration, minimum gap, chronology, and
// structural validity, repairing where possible and removing only cues
// that are structurally unrecoverable (spec.md §4.4). It is the only pass
// that can shorten the output sequence.
func validatePass(in []cue.Cue, cfg Config, stat *stats.Collector, registry overlap.Registry) []cue.Cue {
	out := make([]cue.Cue, 0, len(in))
	prevOriginalIndex := -1

	for i, original := range in {
		working := original

		if working.Duration() < cfg.MinDuration {
			working = working.WithEnd(working.Start + cfg.MinDuration)
			stat.AddMinDurationRepair()
		}

		var prev *cue.Cue
		if len(out) > 0 {
			p := out[len(out)-1]
			prev = &p
		}

		if prev != nil {
			isRegisteredOverlap := i == prevOriginalIndex+1 && registry.Has(prevOriginalIndex)
			gap := working.Start - prev.End
			if !isRegisteredOverlap && gap < cfg.MinGap {
				if gap < -0.5 {
					// Significant overlap: treat as intentional, leave unchanged.
				} else {
					newStart := prev.End + cfg.MinGap
					working = working.WithStart(newStart).WithEnd(newStart + working.Duration())
					stat.AddGapRepair()
				}
			}
		}

		if prev != nil && working.Start < prev.Start {
			working = original
			stat.AddChronologyFix()
		}

		if working.End <= working.Start || working.Start < 0 {
			working = original
			if working.End <= working.Start || working.Start < 0 {
				stat.AddStructuralRemoval()
				continue
			}
		}

		out = append(out, working)
		prevOriginalIndex = i
	}

	return out
}

package optimize

import (
	"math"

	"subtuner/internal/cue"
	"subtuner/internal/overlap"
	"subtuner/internal/stats"
)

// durationPass extends each cue toward its reader-speed target within
// [MinDuration, MaxDuration], bounded by the next cue (spec.md §4.1). It
// never shortens a cue: start is untouched, end only ever moves later.
func durationPass(in []cue.Cue, cfg Config, stat *stats.Collector, registry overlap.Registry) []cue.Cue {
	out := make([]cue.Cue, len(in))
	for i, c := range in {
		target := clamp(float64(c.CharCount())/cfg.CharsPerSec, cfg.MinDuration, cfg.MaxDuration)

		upperBound := math.Inf(1)
		if i+1 < len(in) {
			next := in[i+1]
			if registry.Has(i) {
				upperBound = next.End - c.Start
			} else {
				upperBound = (next.Start - cfg.MinGap) - c.Start
			}
		}

		newDuration := math.Min(target, upperBound)
		finalDuration := c.Duration()
		if newDuration > 0 {
			finalDuration = math.Max(newDuration, c.Duration())
		}

		if finalDuration <= 0 {
			out[i] = c
			continue
		}

		out[i] = c.WithEnd(c.Start + finalDuration)
		stat.AddDurationChange(finalDuration - c.Duration())
	}
	return out
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

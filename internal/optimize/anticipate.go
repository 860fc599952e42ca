package optimize

import (
	"subtuner/internal/cue"
	"subtuner/internal/stats"
)

// anticipatePass advances a cue's start time into a preceding gap when doing
// so still leaves room to read it (spec.md §4.3). end is never touched by
// this pass; only start (and therefore duration) can move earlier.
func anticipatePass(in []cue.Cue, cfg Config, stat *stats.Collector) []cue.Cue {
	out := make([]cue.Cue, len(in))
	copy(out, in)

	for i := range out {
		c := out[i]

		maxOffset := cfg.MaxAnticipation
		var prev *cue.Cue
		if i > 0 {
			p := out[i-1]
			prev = &p
			maxOffset = (c.Start - prev.End) - cfg.MinGap
			if maxOffset < 0 {
				maxOffset = 0
			}
		}
		actualOffset := maxOffset
		if cfg.MaxAnticipation < actualOffset {
			actualOffset = cfg.MaxAnticipation
		}
		if actualOffset < 0.1 {
			continue
		}

		// A cue benefits from anticipation if the duration pass left it
		// short of its reader-speed target (typically because the next
		// cue's start bounded how far end could move), or if it follows
		// another cue and only reached its displayed duration by hitting the
		// min_duration floor. A first cue sitting exactly at the floor is
		// left where it is.
		target := clamp(float64(c.CharCount())/cfg.CharsPerSec, cfg.MinDuration, cfg.MaxDuration)
		belowTarget := c.Duration() < target
		atFloor := prev != nil && c.Duration() <= cfg.MinDuration
		if !belowTarget && !atFloor {
			continue
		}

		newStart := c.Start - actualOffset
		if newStart < 0 || newStart >= c.End {
			continue
		}
		if prev != nil && newStart-prev.End < cfg.MinGap {
			continue
		}
		if c.End-newStart <= c.Duration() {
			continue
		}

		out[i] = c.WithStart(newStart)
		stat.AddAnticipation(actualOffset)
	}

	return out
}

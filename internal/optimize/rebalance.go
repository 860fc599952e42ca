package optimize

import (
	"subtuner/internal/cue"
	"subtuner/internal/stats"
)

// rebalancePass transfers display time from an overlong cue to its
// undersized predecessor, one adjacent pair at a time, left to right
// (spec.md §4.2). A single sweep suffices: a successful transfer updates
// both cues in place, so the shortened donor is what the next pair sees as
// its left member.
func rebalancePass(in []cue.Cue, cfg Config, stat *stats.Collector) []cue.Cue {
	out := make([]cue.Cue, len(in))
	copy(out, in)

	for i := 0; i+1 < len(out); i++ {
		left := out[i]
		right := out[i+1]

		if !(left.Duration() < cfg.ShortThreshold && right.Duration() > cfg.LongThreshold) {
			continue
		}

		deficit := cfg.ShortThreshold - left.Duration()
		surplus := right.Duration() - cfg.LongThreshold
		transfer := deficit
		if surplus < transfer {
			transfer = surplus
		}
		if transfer <= 0 {
			continue
		}

		newLeftEnd := left.End + transfer
		newRightStart := newLeftEnd + cfg.MinGap
		newRightDuration := right.End - newRightStart

		reject := newRightStart >= right.End ||
			newRightDuration < cfg.MinDuration ||
			newRightDuration < left.Duration() ||
			newRightStart-newLeftEnd < cfg.MinGap ||
			newLeftEnd <= left.Start || newRightStart < 0

		if !reject {
			out[i] = left.WithEnd(newLeftEnd)
			out[i+1] = right.WithStart(newRightStart)
			stat.AddRebalanceTransfer(transfer)
		}
	}

	return out
}

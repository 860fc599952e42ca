package batchrun

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// adjustedCueCount sums every file report's per-pass counters (timestamp
// changes, repairs and removals). A cue touched by several passes counts
// once per pass, and a rebalanced pair counts once.
func adjustedCueCount(r Result) int {
	total := 0
	for _, f := range r.Files {
		rep := f.Report
		total += rep.DurationAdjustments + rep.RebalancedPairs + rep.AnticipatedCues +
			rep.MinDurationRepairs + rep.GapRepairs + rep.ChronologyFixes + rep.StructuralRemovals
	}
	return total
}

// Summary renders a one-line, human-readable digest of a batch run, e.g.
// "142 cues adjusted across 12 files in 1.2s".
func Summary(r Result) string {
	adjusted := adjustedCueCount(r)
	elapsed := r.FinishedAt().Sub(r.StartedAt())
	return fmt.Sprintf(
		"%s cues adjusted across %s files in %s",
		humanize.Comma(int64(adjusted)),
		humanize.Comma(int64(len(r.Files))),
		elapsed.Round(time.Millisecond),
	)
}

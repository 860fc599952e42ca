package stats

import "time"

// significantDelta is the threshold below which a timing change is not
// counted, matching original_source's add_duration_change/
// add_rebalancing_transfer/add_anticipation guards.
const significantDelta = 0.01

// Collector accumulates per-run counters and magnitudes across the four
// optimization passes. It is mutated in place by each pass and read by the
// orchestrator's caller once the run completes; it has no other behavior.
type Collector struct {
	OriginalCount int
	FinalCount    int

	DurationAdjustments int
	TotalDurationChange float64

	RebalancedPairs      int
	TotalTimeTransferred float64

	AnticipatedCues   int
	TotalAnticipation float64

	MinDurationRepairs int
	GapRepairs         int
	ChronologyFixes    int
	StructuralRemovals int

	ProcessingTime time.Duration
	startedAt      time.Time
}

// New returns a zeroed Collector.
func New() *Collector {
	return &Collector{}
}

// StartTiming records the wall-clock start of a pipeline run.
func (s *Collector) StartTiming() {
	if s == nil {
		return
	}
	s.startedAt = time.Now()
}

// StopTiming records ProcessingTime as the elapsed time since StartTiming.
// It is a no-op if StartTiming was never called.
func (s *Collector) StopTiming() {
	if s == nil || s.startedAt.IsZero() {
		return
	}
	s.ProcessingTime = time.Since(s.startedAt)
}

// AddDurationChange records a duration-pass extension. Changes at or below
// significantDelta are not counted, matching spec.md §4.1.
func (s *Collector) AddDurationChange(delta float64) {
	if s == nil || delta <= significantDelta {
		return
	}
	s.DurationAdjustments++
	s.TotalDurationChange += delta
}

// AddRebalanceTransfer records a successful rebalance-pass transfer.
func (s *Collector) AddRebalanceTransfer(transfer float64) {
	if s == nil || transfer <= significantDelta {
		return
	}
	s.RebalancedPairs++
	s.TotalTimeTransferred += transfer
}

// AddAnticipation records a successful anticipation-pass shift.
func (s *Collector) AddAnticipation(offset float64) {
	if s == nil || offset <= significantDelta {
		return
	}
	s.AnticipatedCues++
	s.TotalAnticipation += offset
}

// AddMinDurationRepair records a validation-pass minimum-duration repair.
func (s *Collector) AddMinDurationRepair() {
	if s == nil {
		return
	}
	s.MinDurationRepairs++
}

// AddGapRepair records a validation-pass minimum-gap repair.
func (s *Collector) AddGapRepair() {
	if s == nil {
		return
	}
	s.GapRepairs++
}

// AddChronologyFix records a validation-pass chronology rejection.
func (s *Collector) AddChronologyFix() {
	if s == nil {
		return
	}
	s.ChronologyFixes++
}

// AddStructuralRemoval records the validation pass dropping an irreparable cue.
func (s *Collector) AddStructuralRemoval() {
	if s == nil {
		return
	}
	s.StructuralRemovals++
}

// Report is the immutable snapshot returned to callers once a run completes
// (spec.md §6.3): it has no ordering or timestamp guarantees beyond being
// produced once at pipeline completion.
type Report struct {
	OriginalCount int
	FinalCount    int

	DurationAdjustments int
	TotalDurationChange float64
	AvgDurationChange   float64

	RebalancedPairs      int
	TotalTimeTransferred float64
	AvgTransfer          float64

	AnticipatedCues   int
	TotalAnticipation float64
	AvgAnticipation   float64

	MinDurationRepairs int
	GapRepairs         int
	ChronologyFixes    int
	StructuralRemovals int

	ProcessingTime time.Duration
}

// Snapshot produces the §6.3 statistics report, including derived averages.
func (s *Collector) Snapshot() Report {
	if s == nil {
		return Report{}
	}
	r := Report{
		OriginalCount:        s.OriginalCount,
		FinalCount:           s.FinalCount,
		DurationAdjustments:  s.DurationAdjustments,
		TotalDurationChange:  s.TotalDurationChange,
		RebalancedPairs:      s.RebalancedPairs,
		TotalTimeTransferred: s.TotalTimeTransferred,
		AnticipatedCues:      s.AnticipatedCues,
		TotalAnticipation:    s.TotalAnticipation,
		MinDurationRepairs:   s.MinDurationRepairs,
		GapRepairs:           s.GapRepairs,
		ChronologyFixes:      s.ChronologyFixes,
		StructuralRemovals:   s.StructuralRemovals,
		ProcessingTime:       s.ProcessingTime,
	}
	if s.DurationAdjustments > 0 {
		r.AvgDurationChange = s.TotalDurationChange / float64(s.DurationAdjustments)
	}
	if s.RebalancedPairs > 0 {
		r.AvgTransfer = s.TotalTimeTransferred / float64(s.RebalancedPairs)
	}
	if s.AnticipatedCues > 0 {
		r.AvgAnticipation = s.TotalAnticipation / float64(s.AnticipatedCues)
	}
	return r
}

// Merge folds other's counters and magnitudes into r, used by
// internal/batchrun to aggregate per-file reports into one batch report.
// ProcessingTime is summed; counts and magnitudes add directly.
func (r *Report) Merge(other Report) {
	r.OriginalCount += other.OriginalCount
	r.FinalCount += other.FinalCount
	r.DurationAdjustments += other.DurationAdjustments
	r.TotalDurationChange += other.TotalDurationChange
	r.RebalancedPairs += other.RebalancedPairs
	r.TotalTimeTransferred += other.TotalTimeTransferred
	r.AnticipatedCues += other.AnticipatedCues
	r.TotalAnticipation += other.TotalAnticipation
	r.MinDurationRepairs += other.MinDurationRepairs
	r.GapRepairs += other.GapRepairs
	r.ChronologyFixes += other.ChronologyFixes
	r.StructuralRemovals += other.StructuralRemovals
	r.ProcessingTime += other.ProcessingTime
	if r.DurationAdjustments > 0 {
		r.AvgDurationChange = r.TotalDurationChange / float64(r.DurationAdjustments)
	}
	if r.RebalancedPairs > 0 {
		r.AvgTransfer = r.TotalTimeTransferred / float64(r.RebalancedPairs)
	}
	if r.AnticipatedCues > 0 {
		r.AvgAnticipation = r.TotalAnticipation / float64(r.AnticipatedCues)
	}
}

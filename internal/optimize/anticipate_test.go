package optimize

import (
	"testing"

	"subtuner/internal/cue"
	"subtuner/internal/stats"
)

func TestAnticipatePassAdvancesStartAcrossGap(t *testing.T) {
	cfg := DefaultConfig()
	in := []cue.Cue{
		cue.New(0, 10.0, 11.0, "A", nil),
		cue.New(1, 12.0, 13.0, "B", nil),
	}
	stat := stats.New()
	out := anticipatePass(in, cfg, stat)

	if out[1].Start != 11.5 {
		t.Fatalf("out[1].Start = %v, want 11.5", out[1].Start)
	}
	if out[1].End != in[1].End {
		t.Fatalf("anticipation must not touch end: got %v, want %v", out[1].End, in[1].End)
	}
	if got, want := out[1].Start-out[0].End, 0.5; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("gap after anticipation = %v, want %v", got, want)
	}
	if stat.AnticipatedCues != 1 {
		t.Fatalf("AnticipatedCues = %d, want 1", stat.AnticipatedCues)
	}
}

func TestAnticipatePassSkipsBelowMinimumBenefit(t *testing.T) {
	cfg := DefaultConfig()
	in := []cue.Cue{
		cue.New(0, 10.0, 11.0, "A", nil),
		cue.New(1, 11.08, 13.0, "B", nil), // gap - min_gap = 0.08 - 0.05 = 0.03, below the 0.1 minimum benefit
	}
	stat := stats.New()
	out := anticipatePass(in, cfg, stat)

	if out[1] != in[1] {
		t.Fatalf("expected no shift, got %+v", out[1])
	}
}

func TestAnticipatePassFirstCueUsesConfigMaximum(t *testing.T) {
	cfg := DefaultConfig()
	in := []cue.Cue{cue.New(0, 1.0, 1.3, "lead-in", nil)}
	stat := stats.New()
	out := anticipatePass(in, cfg, stat)

	if out[0].Start != 1.0-cfg.MaxAnticipation {
		t.Fatalf("out[0].Start = %v, want %v", out[0].Start, 1.0-cfg.MaxAnticipation)
	}
}

func TestAnticipatePassRejectsShiftBelowZero(t *testing.T) {
	cfg := DefaultConfig()
	in := []cue.Cue{cue.New(0, 0.1, 0.4, "near start", nil)}
	stat := stats.New()
	out := anticipatePass(in, cfg, stat)

	if out[0].Start < 0 {
		t.Fatalf("anticipation produced a negative start: %v", out[0].Start)
	}
}

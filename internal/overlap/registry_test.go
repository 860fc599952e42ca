package overlap_test

import (
	"testing"

	"subtuner/internal/cue"
	"subtuner/internal/overlap"
)

func TestComputeDetectsOverlappingPairs(t *testing.T) {
	input := []cue.Cue{
		cue.New(0, 10.0, 13.0, "Speaker A", nil),
		cue.New(1, 12.0, 14.0, "Speaker B", nil),
		cue.New(2, 15.0, 16.0, "Speaker C", nil),
	}
	reg := overlap.Compute(input)

	if !reg.Has(0) {
		t.Fatal("expected pair (0,1) to be registered as overlapping")
	}
	if reg.Has(1) {
		t.Fatal("did not expect pair (1,2) to be registered as overlapping")
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
}

func TestComputeEmptyAndSingleton(t *testing.T) {
	if got := overlap.Compute(nil).Len(); got != 0 {
		t.Fatalf("empty input: Len() = %d, want 0", got)
	}
	single := []cue.Cue{cue.New(0, 0, 1, "only", nil)}
	if got := overlap.Compute(single).Len(); got != 0 {
		t.Fatalf("single cue: Len() = %d, want 0", got)
	}
}

func TestComputeTouchingCuesAreNotOverlapping(t *testing.T) {
	input := []cue.Cue{
		cue.New(0, 0, 1, "first", nil),
		cue.New(1, 1, 2, "second", nil),
	}
	if overlap.Compute(input).Has(0) {
		t.Fatal("touching (end == next start) should not register as overlap")
	}
}

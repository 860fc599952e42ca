package overlap

import "subtuner/internal/cue"

// Registry is the set of (i, i+1) index pairs, indexed by the left member i,
// such that input[i].End > input[i+1].Start. It is immutable once built.
type Registry struct {
	overlapsAt map[int]struct{}
}

// Compute scans the input sequence once and returns the registry of adjacent
// overlapping pairs. It is the only consumer of the input's original timing;
// every pass downstream operates on the in-progress sequence instead.
func Compute(input []cue.Cue) Registry {
	reg := Registry{overlapsAt: make(map[int]struct{})}
	for i := 0; i+1 < len(input); i++ {
		if input[i].End > input[i+1].Start {
			reg.overlapsAt[i] = struct{}{}
		}
	}
	return reg
}

// Has reports whether the pair (i, i+1) is a registered overlap.
func (r Registry) Has(i int) bool {
	_, ok := r.overlapsAt[i]
	return ok
}

// Len returns the number of registered overlapping pairs.
func (r Registry) Len() int {
	return len(r.overlapsAt)
}

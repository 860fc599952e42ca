// Package overlap computes and represents the set of adjacent input cue
// pairs whose original timing overlaps. The registry is computed once, from
// the input sequence only, and is consulted — never grown — by every
// downstream pass so intentional overlaps (two speakers, karaoke layers)
// survive gap enforcement.
//
// Grounded on the index-pair bookkeeping in
// other_examples/...srt_overlaps.go (FixSRTOverlaps), generalized from a
// destructive fixup into a read-only registry the optimizer consults.
package overlap

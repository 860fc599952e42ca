package cue

import "strings"

// Metadata is an opaque, format-specific payload (original markup, style
// reference, document handle) that the pipeline passes through unread.
// Codecs own the concrete shape; the pipeline only ever copies the handle.
type Metadata any

// Cue represents one displayable subtitle event. Cues are immutable: every
// pipeline pass that adjusts timing returns a new Cue rather than mutating
// this one. Text and Metadata are shared by reference across passes.
type Cue struct {
	// Index is the stable ordinal assigned by the source parser. It is used
	// for diagnostics only and is never rewritten by the pipeline.
	Index int

	// Start is the display start time in seconds, non-negative.
	Start float64

	// End is the display end time in seconds, strictly greater than Start
	// for a structurally valid cue.
	End float64

	// Text is the displayable text, markup already stripped by the parser,
	// with any embedded line breaks preserved.
	Text string

	// Metadata is the format-specific payload carried through untouched.
	Metadata Metadata
}

// New constructs a Cue. It performs no validation; callers check Valid()
// where it matters. In the pipeline, structural validity is enforced only by
// the final validation pass.
func New(index int, start, end float64, text string, metadata Metadata) Cue {
	return Cue{Index: index, Start: start, End: end, Text: text, Metadata: metadata}
}

// Duration returns End-Start. It is not stored; it is recomputed from the
// two timestamps so a pass can never update one field and forget the other.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// WithEnd returns a copy of c with End replaced. Start, Text, and Metadata
// are carried over unchanged.
func (c Cue) WithEnd(end float64) Cue {
	c.End = end
	return c
}

// WithStart returns a copy of c with Start replaced. End, Text, and Metadata
// are carried over unchanged.
func (c Cue) WithStart(start float64) Cue {
	c.Start = start
	return c
}

// WithTimes returns a copy of c with both Start and End replaced.
func (c Cue) WithTimes(start, end float64) Cue {
	c.Start = start
	c.End = end
	return c
}

// Valid reports whether c satisfies the structural validity predicate:
// Start >= 0, End > Start, and Text is non-empty once trimmed.
func (c Cue) Valid() bool {
	return c.Start >= 0 && c.End > c.Start && strings.TrimSpace(c.Text) != ""
}

// CharCount returns the number of displayable characters in Text, the input
// to the reading-speed budget. It strips markup tags of the form <...> and
// {...} and trims surrounding whitespace before counting; see charcount.go.
func (c Cue) CharCount() int {
	return CharCount(c.Text)
}

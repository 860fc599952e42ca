// Package cue defines the immutable subtitle event that the optimization
// pipeline (internal/optimize) operates on.
//
// A Cue is constructed once by an upstream format parser (internal/srtcodec,
// internal/vttcodec, internal/asscodec) and never mutated afterward: each
// pipeline pass that needs to change timing emits a new Cue value rather than
// editing one in place. Text and Metadata are carried by reference across
// passes; only Start and End ever change.
package cue

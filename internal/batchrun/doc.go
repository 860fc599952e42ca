// Package batchrun walks a directory tree, optimizes every subtitle file it
// finds, and aggregates the per-file statistics into one report. It is
// grounded on the teacher's internal/organizer directory/file handling idiom
// (stat-before-move, copy-before-overwrite) and on gofrs/flock's use in
// internal/daemon/daemon.go for an exclusive lock held while an output file
// is (re)written, so two concurrent batch invocations over an overlapping
// tree cannot interleave writes to the same path.
package batchrun

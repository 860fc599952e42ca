// Package apperr provides the error taxonomy shared by subtuner's CLI,
// codec, and configuration layers, adapted from the teacher's
// internal/services.ErrorKind/ServiceError and internal/queue.ErrorClassifier
// patterns.
//
// The optimization pipeline itself (internal/optimize) does not use this
// package: per spec.md §7 its only error surface is configuration validation
// at construction time, and every in-flight failure self-corrects into
// internal/stats instead of propagating. apperr exists for the layers around
// the pipeline — codecs that can fail to parse or write a file, and the CLI
// that can be misconfigured — which need a consistent, loggable error shape.
package apperr

// Package vttcodec reads and writes WebVTT (.vtt) subtitle files. Timing
// uses "HH:MM:SS.mmm" (or "MM:SS.mmm" when under an hour) rather than SRT's
// comma-separated milliseconds; cue identifiers and original cue text are
// preserved in Metadata, while any text after the leading "WEBVTT" is not
// kept (Write emits a bare header), following
// original_source/subtuner/{parsers,writers}/vtt_parser.py and
// vtt_writer.py's original_text/identifier passthrough.
package vttcodec

// Package srtcodec reads and writes SubRip (.srt) subtitle files, producing
// and consuming cue.Cue sequences. Timestamp parsing follows the teacher's
// internal/subtitles/srt.go ("HH:MM:SS,mmm", comma normalized from period);
// the block/entry shape follows other_examples' ParseSRT/WriteSRT pair. Text
// is stripped of markup and passed to cue.New untouched from the source
// apart from that stripping; the original text is preserved in Metadata so
// Write can round-trip formatting for unmodified lines.
package srtcodec

package srtcodec

import (
	"os"
	"path/filepath"
	"testing"

	"subtuner/internal/cue"
)

func TestParseReadsTimingAndStripsMarkup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.srt")
	content := "1\n00:00:01,000 --> 00:00:02,500\nHello <i>world</i>\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nSecond line\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cues, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("len(cues) = %d, want 2", len(cues))
	}
	if cues[0].Start != 1.0 || cues[0].End != 2.5 {
		t.Fatalf("cues[0] timing = [%v,%v]", cues[0].Start, cues[0].End)
	}
	if cues[0].Text != "Hello world" {
		t.Fatalf("cues[0].Text = %q, want markup stripped", cues[0].Text)
	}
}

func TestParseSkipsBlankBlocks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.srt")
	content := "1\n00:00:01,000 --> 00:00:02,000\nOnly one\n\n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cues, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("len(cues) = %d, want 1", len(cues))
	}
}

func TestWriteRoundTripsTiming(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.srt")
	cues := []cue.Cue{
		cue.New(0, 1.0, 2.5, "Hello world", Metadata{OriginalText: "Hello world"}),
		cue.New(1, 3.0, 4.25, "Second", nil),
	}
	if err := Write(path, cues); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Start != 1.0 || got[0].End != 2.5 {
		t.Fatalf("got[0] timing = [%v,%v]", got[0].Start, got[0].End)
	}
	if got[1].Start != 3.0 || got[1].End != 4.25 {
		t.Fatalf("got[1] timing = [%v,%v]", got[1].Start, got[1].End)
	}
}

func TestFormatTimestampHandlesZero(t *testing.T) {
	if got := formatTimestamp(0); got != "00:00:00,000" {
		t.Fatalf("formatTimestamp(0) = %q", got)
	}
}

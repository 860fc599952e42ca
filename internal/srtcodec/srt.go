package srtcodec

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"subtuner/internal/apperr"
	"subtuner/internal/cue"
)

// Metadata is the per-cue payload srtcodec attaches to every cue it parses.
// Write uses OriginalText verbatim when the caller hasn't changed it, so
// inline styling tags the pipeline never touches survive a round trip.
type Metadata struct {
	OriginalText string
}

// Parse reads an SRT file and returns one cue per subtitle block. Blocks are
// separated by a blank line; a block is an index line, a "start --> end"
// timing line, and one or more text lines.
func Parse(path string) ([]cue.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Parsing(path, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	blocks := strings.Split(content, "\n\n")
	cues := make([]cue.Cue, 0, len(blocks))
	index := 0

	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		timingLineIdx := 0
		if !strings.Contains(lines[0], "-->") {
			// First line is the numeric index; skip it.
			timingLineIdx = 1
		}
		if timingLineIdx >= len(lines) || !strings.Contains(lines[timingLineIdx], "-->") {
			continue
		}

		parts := strings.SplitN(lines[timingLineIdx], "-->", 2)
		if len(parts) != 2 {
			continue
		}
		start, err := parseTimestamp(parts[0])
		if err != nil {
			return nil, apperr.Parsing(path, fmt.Errorf("block %d: %w", index, err))
		}
		end, err := parseTimestamp(parts[1])
		if err != nil {
			return nil, apperr.Parsing(path, fmt.Errorf("block %d: %w", index, err))
		}

		textLines := lines[timingLineIdx+1:]
		originalText := strings.Join(textLines, "\n")
		text := stripSRTTags(originalText)
		if strings.TrimSpace(text) == "" {
			continue
		}

		cues = append(cues, cue.New(index, start, end, text, Metadata{OriginalText: originalText}))
		index++
	}

	return cues, nil
}

// Write serializes cues to an SRT file, renumbering sequentially from 1.
// When a cue's Metadata is an srtcodec.Metadata carrying its original text,
// that text is written verbatim; otherwise Text is written as-is.
func Write(path string, cues []cue.Cue) error {
	file, err := os.Create(path)
	if err != nil {
		return apperr.Writing(path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i, c := range cues {
		text := c.Text
		if meta, ok := c.Metadata.(Metadata); ok && meta.OriginalText != "" {
			text = meta.OriginalText
		}
		fmt.Fprintf(w, "%d\n", i+1)
		fmt.Fprintf(w, "%s --> %s\n", formatTimestamp(c.Start), formatTimestamp(c.End))
		fmt.Fprintf(w, "%s\n\n", text)
	}

	if err := w.Flush(); err != nil {
		return apperr.Writing(path, err)
	}
	return nil
}

func parseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	millis := int((seconds-float64(int(seconds)))*1000 + 0.5)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// stripSRTTags removes inline markup (<i>, <b>, {\an8}, timestamp tags) and
// trims surrounding whitespace (inner whitespace is left as is), giving what the pipeline expects a parser to hand
// it: displayable text only. The original markup is preserved separately in
// Metadata for Write.
func stripSRTTags(text string) string {
	var b strings.Builder
	depth := 0
	for _, r := range text {
		switch r {
		case '<', '{':
			depth++
		case '>', '}':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return strings.TrimSpace(b.String())
}

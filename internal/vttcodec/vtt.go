package vttcodec

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"subtuner/internal/apperr"
	"subtuner/internal/cue"
)

// Metadata is the per-cue payload vttcodec attaches to every cue it parses.
type Metadata struct {
	Identifier   string
	OriginalText string
}

// Parse reads a WebVTT file and returns one cue per caption block. NOTE
// blocks and STYLE blocks are skipped; the file must start with a "WEBVTT"
// header line per the format.
func Parse(path string) ([]cue.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Parsing(path, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\xef\xbb\xbf")
	if !strings.HasPrefix(strings.TrimSpace(content), "WEBVTT") {
		return nil, apperr.Parsing(path, fmt.Errorf("missing WEBVTT header"))
	}

	blocks := strings.Split(strings.TrimSpace(content), "\n\n")
	cues := make([]cue.Cue, 0, len(blocks))
	index := 0

	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) == 0 {
			continue
		}
		if strings.HasPrefix(lines[0], "NOTE") || strings.HasPrefix(lines[0], "STYLE") || strings.HasPrefix(lines[0], "REGION") {
			continue
		}

		identifier := ""
		timingLineIdx := 0
		if !strings.Contains(lines[0], "-->") {
			identifier = strings.TrimSpace(lines[0])
			timingLineIdx = 1
		}
		if timingLineIdx >= len(lines) || !strings.Contains(lines[timingLineIdx], "-->") {
			continue
		}

		timingLine := lines[timingLineIdx]
		parts := strings.SplitN(timingLine, "-->", 2)
		if len(parts) != 2 {
			continue
		}
		start, err := parseTimestamp(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, apperr.Parsing(path, fmt.Errorf("block %d: %w", index, err))
		}
		// The portion after the end timestamp may carry cue settings
		// ("line:0 align:start"); only the first field is the timestamp.
		endField := strings.Fields(strings.TrimSpace(parts[1]))
		if len(endField) == 0 {
			return nil, apperr.Parsing(path, fmt.Errorf("block %d: missing end timestamp", index))
		}
		end, err := parseTimestamp(endField[0])
		if err != nil {
			return nil, apperr.Parsing(path, fmt.Errorf("block %d: %w", index, err))
		}

		textLines := lines[timingLineIdx+1:]
		originalText := strings.Join(textLines, "\n")
		text := stripVTTTags(originalText)
		if strings.TrimSpace(text) == "" {
			continue
		}

		cues = append(cues, cue.New(index, start, end, text, Metadata{Identifier: identifier, OriginalText: originalText}))
		index++
	}

	return cues, nil
}

// Write serializes cues to a WebVTT file with a bare "WEBVTT" header.
func Write(path string, cues []cue.Cue) error {
	file, err := os.Create(path)
	if err != nil {
		return apperr.Writing(path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "WEBVTT\n\n")
	for _, c := range cues {
		text := c.Text
		identifier := ""
		if meta, ok := c.Metadata.(Metadata); ok {
			if meta.OriginalText != "" {
				text = meta.OriginalText
			}
			identifier = meta.Identifier
		}
		if identifier != "" {
			fmt.Fprintf(w, "%s\n", identifier)
		}
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
	parts := strings.Split(value, ".")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(parts[0], ":")
	var hours, minutes, seconds int
	var err error
	switch len(hms) {
	case 3:
		hours, err = strconv.Atoi(hms[0])
		if err == nil {
			minutes, err = strconv.Atoi(hms[1])
		}
		if err == nil {
			seconds, err = strconv.Atoi(hms[2])
		}
	case 2:
		minutes, err = strconv.Atoi(hms[0])
		if err == nil {
			seconds, err = strconv.Atoi(hms[1])
		}
	default:
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	millis, err := strconv.Atoi(parts[1])
	if err != nil {
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
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
	}
	return fmt.Sprintf("%02d:%02d.%03d", minutes, secs, millis)
}

func stripVTTTags(text string) string {
	var b strings.Builder
	depth := 0
	for _, r := range text {
		switch r {
		case '<':
			depth++
		case '>':
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

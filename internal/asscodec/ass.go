package asscodec

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"subtuner/internal/apperr"
	"subtuner/internal/cue"
)

// Document carries everything in an ASS file outside the per-event fields:
// the [Script Info] and [V4+ Styles] sections verbatim, plus the [Events]
// Format line, so Write can reproduce the original styling exactly.
type Document struct {
	Header      string
	FormatLine  string
	FormatOrder []string
}

// Metadata is the per-cue payload asscodec attaches to every cue it parses.
type Metadata struct {
	Doc          *Document
	Layer        string
	Style        string
	Name         string
	MarginL      string
	MarginR      string
	MarginV      string
	Effect       string
	OriginalText string
}

// Parse reads an ASS/SSA file and returns one cue per Dialogue event.
// Comment events are dropped, matching the reference parser's behavior.
func Parse(path string) ([]cue.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Parsing(path, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	eventsIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "[Events]" {
			eventsIdx = i
			break
		}
	}
	if eventsIdx == -1 {
		return nil, apperr.Parsing(path, fmt.Errorf("no [Events] section"))
	}

	formatIdx := -1
	for i := eventsIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "Format:") {
			formatIdx = i
			break
		}
	}
	if formatIdx == -1 {
		return nil, apperr.Parsing(path, fmt.Errorf("[Events] section has no Format line"))
	}

	formatOrder := parseFormatOrder(lines[formatIdx])
	layerPos, startPos, endPos, stylePos, namePos, mlPos, mrPos, mvPos, effectPos, textPos :=
		fieldIndex(formatOrder, "Layer"), fieldIndex(formatOrder, "Start"), fieldIndex(formatOrder, "End"),
		fieldIndex(formatOrder, "Style"), fieldIndex(formatOrder, "Name"),
		fieldIndex(formatOrder, "MarginL"), fieldIndex(formatOrder, "MarginR"), fieldIndex(formatOrder, "MarginV"),
		fieldIndex(formatOrder, "Effect"), fieldIndex(formatOrder, "Text")
	if startPos == -1 || endPos == -1 || textPos == -1 {
		return nil, apperr.Parsing(path, fmt.Errorf("Format line missing Start/End/Text"))
	}

	doc := &Document{
		Header:      strings.Join(lines[:formatIdx], "\n"),
		FormatLine:  lines[formatIdx],
		FormatOrder: formatOrder,
	}

	cues := make([]cue.Cue, 0)
	index := 0
	for i := formatIdx + 1; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(strings.TrimSpace(line), "Dialogue:") {
			continue
		}
		fields := splitEventFields(strings.TrimPrefix(strings.TrimSpace(line), "Dialogue:"), len(formatOrder))
		if len(fields) < len(formatOrder) {
			continue
		}

		start, err := parseASSTimestamp(strings.TrimSpace(fields[startPos]))
		if err != nil {
			return nil, apperr.Parsing(path, fmt.Errorf("event %d: %w", index, err))
		}
		end, err := parseASSTimestamp(strings.TrimSpace(fields[endPos]))
		if err != nil {
			return nil, apperr.Parsing(path, fmt.Errorf("event %d: %w", index, err))
		}

		originalText := fields[textPos]
		text := stripASSOverrides(originalText)
		if strings.TrimSpace(text) == "" {
			continue
		}

		meta := Metadata{Doc: doc, OriginalText: originalText}
		if layerPos != -1 {
			meta.Layer = strings.TrimSpace(fields[layerPos])
		}
		if stylePos != -1 {
			meta.Style = strings.TrimSpace(fields[stylePos])
		}
		if namePos != -1 {
			meta.Name = strings.TrimSpace(fields[namePos])
		}
		if mlPos != -1 {
			meta.MarginL = strings.TrimSpace(fields[mlPos])
		}
		if mrPos != -1 {
			meta.MarginR = strings.TrimSpace(fields[mrPos])
		}
		if mvPos != -1 {
			meta.MarginV = strings.TrimSpace(fields[mvPos])
		}
		if effectPos != -1 {
			meta.Effect = strings.TrimSpace(fields[effectPos])
		}

		cues = append(cues, cue.New(index, start, end, text, meta))
		index++
	}

	return cues, nil
}

// Write serializes cues back into an ASS file. It reuses the [Script Info]
// and [V4+ Styles] sections plus the Format line from the first cue's
// Document, so a file that only had its timing retimed keeps its original
// styling untouched.
func Write(path string, cues []cue.Cue) error {
	var doc *Document
	for _, c := range cues {
		if meta, ok := c.Metadata.(Metadata); ok && meta.Doc != nil {
			doc = meta.Doc
			break
		}
	}
	if doc == nil {
		return apperr.Writing(path, fmt.Errorf("no source document metadata available to write an ASS file"))
	}

	file, err := os.Create(path)
	if err != nil {
		return apperr.Writing(path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\n%s\n", doc.Header, doc.FormatLine)

	for _, c := range cues {
		meta, _ := c.Metadata.(Metadata)
		text := meta.OriginalText
		if text == "" {
			text = c.Text
		}
		fields := make([]string, len(doc.FormatOrder))
		for i, name := range doc.FormatOrder {
			switch name {
			case "Layer":
				fields[i] = defaultStr(meta.Layer, "0")
			case "Start":
				fields[i] = formatASSTimestamp(c.Start)
			case "End":
				fields[i] = formatASSTimestamp(c.End)
			case "Style":
				fields[i] = defaultStr(meta.Style, "Default")
			case "Name":
				fields[i] = meta.Name
			case "MarginL":
				fields[i] = defaultStr(meta.MarginL, "0")
			case "MarginR":
				fields[i] = defaultStr(meta.MarginR, "0")
			case "MarginV":
				fields[i] = defaultStr(meta.MarginV, "0")
			case "Effect":
				fields[i] = meta.Effect
			case "Text":
				fields[i] = text
			default:
				fields[i] = ""
			}
		}
		fmt.Fprintf(w, "Dialogue: %s\n", strings.Join(fields, ","))
	}

	if err := w.Flush(); err != nil {
		return apperr.Writing(path, err)
	}
	return nil
}

func defaultStr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseFormatOrder(line string) []string {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "Format:"))
	parts := strings.Split(line, ",")
	order := make([]string, len(parts))
	for i, p := range parts {
		order[i] = strings.TrimSpace(p)
	}
	return order
}

func fieldIndex(order []string, name string) int {
	for i, v := range order {
		if v == name {
			return i
		}
	}
	return -1
}

// splitEventFields splits a Dialogue/Comment payload into exactly fieldCount
// fields; the last field (Text) absorbs any remaining commas, since ASS
// dialogue text may itself contain them.
func splitEventFields(payload string, fieldCount int) []string {
	fields := strings.SplitN(payload, ",", fieldCount)
	for i := range fields {
		if i < len(fields)-1 {
			fields[i] = strings.TrimSpace(fields[i])
		}
	}
	return fields
}

func parseASSTimestamp(value string) (float64, error) {
	parts := strings.Split(value, ".")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(parts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	centis, errC := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || errS != nil || errC != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(centis)/100, nil
}

func formatASSTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	centis := int((seconds-float64(int(seconds)))*100 + 0.5)
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}

// stripASSOverrides removes {\tag} override blocks and converts \N/\n line
// break escapes, mirroring ass_parser.py's _clean_ass_text.
func stripASSOverrides(text string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '\\':
			if depth == 0 && i+1 < len(text) {
				switch text[i+1] {
				case 'N':
					b.WriteByte('\n')
					i++
					continue
				case 'n':
					b.WriteByte(' ')
					i++
					continue
				case 'h':
					b.WriteByte(' ')
					i++
					continue
				}
			}
			if depth == 0 {
				b.WriteByte(text[i])
			}
		default:
			if depth == 0 {
				b.WriteByte(text[i])
			}
		}
	}
	return strings.TrimSpace(b.String())
}

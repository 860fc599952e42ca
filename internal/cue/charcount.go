package cue

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// tagPattern matches markup tags of the form <...> (SRT/VTT) or {...}
// (ASS/SSA override blocks). CharCount strips both before counting so the
// reading-speed budget is driven by displayable text only.
var tagPattern = regexp.MustCompile(`<[^>]*>|\{[^}]*\}`)

// CharCount returns the number of displayable characters in text: markup
// tags are stripped, fullwidth/halfwidth forms are folded to their narrow
// equivalent (so a line of fullwidth CJK punctuation budgets the same as its
// halfwidth equivalent), and surrounding whitespace is trimmed.
func CharCount(text string) int {
	stripped := tagPattern.ReplaceAllString(text, "")
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		return 0
	}
	folded := width.Narrow.String(stripped)
	return len([]rune(folded))
}

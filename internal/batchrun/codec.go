package batchrun

import (
	"strings"

	"subtuner/internal/asscodec"
	"subtuner/internal/cue"
	"subtuner/internal/srtcodec"
	"subtuner/internal/vttcodec"
)

// codec binds a subtitle file extension to its parser and writer.
type codec struct {
	parse func(path string) ([]cue.Cue, error)
	write func(path string, cues []cue.Cue) error
}

var codecsByExt = map[string]codec{
	".srt": {parse: srtcodec.Parse, write: srtcodec.Write},
	".vtt": {parse: vttcodec.Parse, write: vttcodec.Write},
	".ass": {parse: asscodec.Parse, write: asscodec.Write},
	".ssa": {parse: asscodec.Parse, write: asscodec.Write},
}

// codecFor returns the codec registered for path's extension, and whether
// one was found. Matching is case-insensitive, matching how the extensions
// appear in the wild.
func codecFor(path string) (codec, bool) {
	ext := strings.ToLower(extOf(path))
	c, ok := codecsByExt[ext]
	return c, ok
}

func extOf(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	return path[idx:]
}

// SupportedExtensions reports the file extensions a batch walk will pick up.
func SupportedExtensions() []string {
	return []string{".srt", ".vtt", ".ass", ".ssa"}
}

package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// shouldColorize reports whether w is a terminal a human is watching, the
// same test the teacher's cmd/spindle/status_render.go applies before
// adding ANSI color to CLI status lines.
func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorableWriter wraps w so ANSI sequences render correctly on terminals
// that need translation (notably Windows consoles); elsewhere it is a
// no-op passthrough.
func colorableWriter(w io.Writer) io.Writer {
	if file, ok := w.(*os.File); ok {
		return colorable.NewColorable(file)
	}
	return w
}

var (
	levelColorError = color.New(color.FgRed, color.Bold)
	levelColorWarn  = color.New(color.FgYellow, color.Bold)
	levelColorInfo  = color.New(color.FgCyan)
	levelColorDebug = color.New(color.FgHiBlack)
)

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// colorizeLevel renders a level label with the level's color when colorize
// is true, and plain otherwise.
func colorizeLevel(level slog.Level, colorize bool) string {
	label := levelLabel(level)
	if !colorize {
		return label
	}
	switch {
	case level >= slog.LevelError:
		return levelColorError.Sprint(label)
	case level >= slog.LevelWarn:
		return levelColorWarn.Sprint(label)
	case level >= slog.LevelInfo:
		return levelColorInfo.Sprint(label)
	default:
		return levelColorDebug.Sprint(label)
	}
}

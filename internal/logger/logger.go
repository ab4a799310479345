// Package logger builds the zerolog logger used by the sarif2xlsx CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DefaultLevel applies when no level is configured or the name is unknown.
const DefaultLevel = zerolog.WarnLevel

// Config selects the level, the output format and the sink.
type Config struct {
	Level   string
	Format  string // "console" or "json"
	Output  io.Writer
	NoColor bool
}

// New returns a logger for cfg. A nil Output writes to stderr.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, falling back to
// DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// ColorDisabled reports whether output to w should be plain: NO_COLOR is
// set or w is not a terminal.
func ColorDisabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !IsTerminal(w)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

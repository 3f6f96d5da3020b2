package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w. Format "json" emits JSON lines; anything else uses the console writer.
func New(level, format string, w io.Writer) zerolog.Logger {
	var out io.Writer = w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

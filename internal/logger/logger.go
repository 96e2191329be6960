package logger

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/jeanhaley32/specstory-stats/internal/terminal"
)

// New creates a diagnostic logger writing to w.
// Unknown levels fall back to warn. Output is human-readable when w is a
// terminal and JSON lines otherwise.
func New(level string, w io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}

	output := w
	if terminal.IsTerminal(w) {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
}

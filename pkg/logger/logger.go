package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Unknown level strings fall back to info.
// pretty switches to a human-readable console writer for local runs.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return base(w, level).With().Caller().Logger()
}

// NewWithWriter builds a logger over a custom writer, for tests that want
// to inspect the emitted JSON.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return base(w, level)
}

func base(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "p2p-settlement").
		Logger()
}

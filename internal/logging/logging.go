// Package logging configures the zerolog logger used by the hdrline command.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the level chosen by flags, e.g. HDRLINE_LOG_LEVEL=trace.
const EnvLogLevel = "HDRLINE_LOG_LEVEL"

// New returns a console logger writing to w. Only warnings and errors are
// logged unless verbose is set, which enables debug output.
func New(w io.Writer, verbose bool) zerolog.Logger {
	return configure(w, verbose, os.Getenv)
}

func configure(w io.Writer, verbose bool, getenv func(string) string) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if lvl, ok := parseLevel(getenv(EnvLogLevel)); ok {
		level = lvl
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("app", "hdrline").Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zerolog.NoLevel, false
	}

	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, false
	}

	return lvl, true
}

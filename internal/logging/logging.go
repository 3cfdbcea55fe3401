// Package logging builds the zerolog logger shared by the toolkit.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps diagnostics out of the interactive terminal unless asked for.
const DefaultLevel = "error"

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.ErrorLevel
	}
}

// New returns a console logger writing to w at the given level. With json
// set, records are written as raw JSON lines instead.
func New(level string, w io.Writer, json bool) zerolog.Logger {
	if !json {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

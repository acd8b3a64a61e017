// Package logging builds the zerolog logger shared by every component.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w at the given level.
// Unknown levels fall back to info. The timestamp layout is the process-wide
// zerolog.TimeFieldFormat, which main sets once at startup.
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

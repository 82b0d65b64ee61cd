package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger builds the structured logger for the configured verbosity.
// Verbosity 0 disables logging, 1 logs at info level and 2 or more at
// debug level.
func (c *Config) Logger() zerolog.Logger {
	w := c.LogFile
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(w, c.Verbosity)
}

// NewLogger creates a timestamped logger writing to w at the level
// matching verbosity.
func NewLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.Disabled
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

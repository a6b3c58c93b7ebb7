package commands

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/idelchi/gocipher/internal/config"
)

// newLogger returns a console logger on w at warn level, debug with --verbose
// and disabled with --quiet.
func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel

	switch {
	case cfg.Quiet:
		level = zerolog.Disabled
	case cfg.Verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

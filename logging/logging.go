// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how verbosely the process logs.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...); "info" when
	// empty or unrecognized.
	Level string
	// File, when set, sends logs to a size-rotated file at that path
	// instead of the console.
	File string
}

// New returns a logger configured per cfg. Console output goes through
// zerolog's ConsoleWriter on stderr; file output rotates via lumberjack.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.File != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

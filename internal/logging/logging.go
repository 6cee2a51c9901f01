// Package logging builds the zerolog logger shared by the server and its
// background workers.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"shortlinks/internal/config"
)

// New returns a logger writing to stdout. Format "console" switches to the
// human-readable writer; anything else produces JSON lines.
func New(cfg *config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg *config.LogConfig, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := w
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel falls back to info for unknown or empty values.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

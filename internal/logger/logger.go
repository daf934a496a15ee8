package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"clinic-record-service/internal/config"
)

// New builds the service logger writing to out. Pretty output uses zerolog's
// ConsoleWriter; otherwise every event is one JSON line.
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "clinic-record-service").Logger(), nil
}

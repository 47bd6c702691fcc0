package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config describes the process logger.
type Config struct {
	Level  slog.Level   `yaml:"level" koanf:"level"`
	Format string       `yaml:"format" koanf:"format"`
	Sentry SentryConfig `yaml:"sentry" koanf:"sentry"`
}

// Validate reports unknown formats.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatText:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	log := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewLogHandlerDecorator(log, extractors...))
}

// NewWithConfig creates a logger writing to w in the configured format and level.
// With a Sentry DSN, records also go to Sentry (see NewWithSentry).
func NewWithConfig(w io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := newHandler(w, cfg.Format, cfg.Level)
	if cfg.Sentry.DSN == "" {
		return slog.New(NewLogHandlerDecorator(base, extractors...)), nil
	}
	return withSentry(base, cfg.Sentry, extractors...), nil
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
// It is itself a morph target, so it can be read from the "logging" section of a config file.
type LoggerConfig struct {
	Level  string `morph:"level,optional"`
	Format string `morph:"format,optional"`
}

// NewLogger creates a new slog.Logger writing to w.
// The level is parsed from the config and defaults to INFO; the format defaults to JSON.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// ParseLevel maps a level name to a slog.Level, INFO when unknown.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/polkiloo/autoservice/internal/config"
)

// New creates a preconfigured slog.Logger writing JSON to stdout at the given level.
func New(level string) *slog.Logger {
	return newWithWriter(os.Stdout, level)
}

func newWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler)
}

// ParseLevel maps a textual level to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newFromConfig(cfg *config.Config) *slog.Logger {
	return New(cfg.LogLevel)
}

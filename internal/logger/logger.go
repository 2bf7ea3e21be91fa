// Package logger configures the application slog logger and provides
// request-scoped loggers for HTTP handlers.
//
// Development and test environments get human readable, coloured output (tint).
// All other environments log JSON. Logs are always written to stderr so they stay
// separate from anything the service writes to stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// LevelNone disables logging when used as the handler level.
const LevelNone = slog.Level(12)

// InitLogger creates the application logger and installs it as the slog default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, level, environment))
	slog.SetDefault(logger)
	return logger
}

// NewLogger creates a logger that writes to w without changing the slog default.
func NewLogger(w io.Writer, level slog.Level, environment string) *slog.Logger {
	return slog.New(newHandler(w, level, environment))
}

func newHandler(w io.Writer, level slog.Level, environment string) slog.Handler {
	switch strings.ToLower(environment) {
	case "development", "dev", "test":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		})
	default:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
}

// ParseLogLevel converts a LOG_LEVEL value to a slog.Level. Unknown values default to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "off":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

// isTerminal reports whether w is a character device (colour output is only useful there)
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

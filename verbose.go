package dsgo

import (
	"log/slog"
	"os"

	"github.com/hupe1980/dsgo/internal/diag"
)

// SetVerbose installs a process-wide diagnostic logger. While installed,
// every failed validation in the library logs the failed condition and
// its source location before the error is returned. Passing nil turns
// verbose diagnostics off again (the default). Behavior is otherwise
// identical: the same errors are returned either way.
func SetVerbose(l *slog.Logger) {
	diag.SetLogger(l)
}

// VerboseEnabled reports whether a diagnostic logger is installed.
func VerboseEnabled() bool {
	return diag.Enabled()
}

// NewLogger creates a logger from the given handler. If handler is nil,
// a text handler to stderr at info level is used.
func NewLogger(handler slog.Handler) *slog.Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return slog.New(handler)
}

// NewJSONLogger creates a logger that writes JSON-formatted records to
// stderr. level sets the minimum log level.
func NewJSONLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a logger that writes human-readable records to
// stderr. level sets the minimum log level.
func NewTextLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

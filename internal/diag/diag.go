// Package diag implements the library's verbose failure reporting.
//
// When a logger is installed, every validation failure inside the library
// reports the failed condition and its source location before the error
// is returned to the caller. With no logger installed (the default),
// failure paths are silent and only the returned errors remain.
package diag

import (
	"log/slog"
	"runtime"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger installs l as the process-wide diagnostic logger.
// Passing nil removes the current logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(l)
}

// Enabled reports whether a diagnostic logger is installed.
func Enabled() bool {
	return logger.Load() != nil
}

// Fail reports a failed validation condition. The condition text is the
// check that did not hold, written as it appears in the source. The
// reported location is the call site inside the library.
func Fail(condition string) {
	l := logger.Load()
	if l == nil {
		return
	}

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		l.Error("assertion failed", "condition", condition)
		return
	}

	l.Error("assertion failed", "condition", condition, "file", file, "line", line)
}

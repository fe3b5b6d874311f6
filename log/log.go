// Package log provides structured logging for the zkarith tools. It wraps
// Go's log/slog with per-module child loggers and a geth-style verbosity
// scale. The arithmetic packages never log; only commands do.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is one step below debug, for per-operation output.
const LevelTrace = slog.LevelDebug - 4

// levelSilent is above every level any caller logs at.
const levelSilent = slog.LevelError + 4

// Logger wraps slog.Logger with module context.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger used by the package-level
// convenience functions.
var defaultLogger *Logger

func init() {
	defaultLogger = New(slog.LevelInfo)
}

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	return NewWriter(os.Stderr, level, true)
}

// NewWriter creates a Logger writing to w, as JSON or as logfmt-style text.
func NewWriter(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return NewWithHandler(slog.NewJSONHandler(w, opts))
	}
	return NewWithHandler(slog.NewTextHandler(w, opts))
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// LevelFromVerbosity maps the 0-5 command-line verbosity to a level:
// 0 silent, 1 error, 2 warn, 3 info, 4 debug, 5 trace. Out-of-range values
// are clamped.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return levelSilent
	case v == 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	case v == 4:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger with an additional "module" attribute.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(msg string, args ...any) {
	l.inner.Log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// ---------------------------------------------------------------------------
// Package-level convenience functions -- delegate to defaultLogger.
// ---------------------------------------------------------------------------

// Module returns a child of the default logger tagged with name.
func Module(name string) *Logger { return defaultLogger.Module(name) }

// Debug logs at LevelDebug using the default logger.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs at LevelInfo using the default logger.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs at LevelWarn using the default logger.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs at LevelError using the default logger.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// Package log provides the structured logging interface used across stratfit.
//
// The Logger interface is slog-compatible so a caller can plug in any backend.
// The default provider writes JSON lines through zerolog to stderr. Components
// obtain a named logger once and attach the model name:
//
//	logger := log.GetLoggerWithName("linear").With(
//	    log.ModelNameKey, "LinearRegression",
//	)
//	logger.Debug("fit completed",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 100,
//	)
package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger is a structured logger with key-value fields.
//
// Error treats a leading error argument specially: backends record it under
// the "error" key and may attach its stack trace.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level. Values match slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" into a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", level)
	}
}

// LoggerProvider creates loggers. Swap it with SetLoggerProvider in tests.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}

// Package logger provides the process-wide leveled logger.
//
// Output is routed through jwalterweatherman's default notepad so every
// package logs through the same thresholds and writer.
package logger

import (
	"fmt"
	"io"
	"strings"

	jww "github.com/spf13/jwalterweatherman"
)

// Level is the verbosity threshold used by the logger.
//
// Lower values are more verbose.
type Level = jww.Threshold

const (
	// LevelTrace enables extremely verbose logs (every inbound socket event).
	LevelTrace = jww.LevelTrace
	// LevelDebug enables verbose logs intended for debugging.
	LevelDebug = jww.LevelDebug
	// LevelInfo enables informational logs (default).
	LevelInfo = jww.LevelInfo
	// LevelWarn enables only warnings and errors.
	LevelWarn = jww.LevelWarn
	// LevelError enables only error logs.
	LevelError = jww.LevelError
)

func init() {
	jww.SetStdoutThreshold(LevelInfo)
}

// ParseLevel parses a log level string into a Level.
func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// SetOutput replaces the writer used by the global logger.
func SetOutput(w io.Writer) {
	jww.SetStdoutOutput(w)
}

// SetFlags sets the underlying log flags used for all output.
func SetFlags(flags int) {
	jww.SetFlags(flags)
}

// SetLevel sets the global log level threshold.
func SetLevel(level Level) {
	jww.SetStdoutThreshold(level)
}

// Enabled reports whether a level would be emitted by the current configuration.
func Enabled(level Level) bool {
	return level >= jww.StdoutThreshold()
}

// Tracef logs at TRACE level.
func Tracef(format string, args ...any) {
	jww.TRACE.Printf(format, args...)
}

// Debugf logs at DEBUG level.
func Debugf(format string, args ...any) {
	jww.DEBUG.Printf(format, args...)
}

// Infof logs at INFO level.
func Infof(format string, args ...any) {
	jww.INFO.Printf(format, args...)
}

// Warnf logs at WARN level.
func Warnf(format string, args ...any) {
	jww.WARN.Printf(format, args...)
}

// Errorf logs at ERROR level.
func Errorf(format string, args ...any) {
	jww.ERROR.Printf(format, args...)
}

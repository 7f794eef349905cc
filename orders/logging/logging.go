// Package logging builds the leveled loggers used by the report packages.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	None  = "none"
	Debug = "debug"
	Info  = "info"
	Warn  = "warn"
	Error = "error"
)

// Levels lists the level names New accepts.
var Levels = []string{None, Debug, Info, Warn, Error}

// New returns a text logger writing to w at the named level. Level "none"
// or "" returns a logger that discards everything.
func New(level string, w io.Writer) (*slog.Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	var slevel slog.Level
	switch level {
	case None, "":
		return Discard(), nil
	case Debug:
		slevel = slog.LevelDebug
	case Info:
		slevel = slog.LevelInfo
	case Warn, "warning":
		slevel = slog.LevelWarn
	case Error:
		slevel = slog.LevelError
	default:
		return nil, fmt.Errorf("logging: Unknown level %q.", level)
	}
	return slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: slevel})), nil
}

// Discard returns a logger that writes nothing.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDiscard returns logger or Discard() if logger is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}

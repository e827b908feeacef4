// Package logging builds the slog loggers used by tspaths.
package logging

import (
	"io"
	"log/slog"
)

// LevelQuiet is above every standard level.
const LevelQuiet = slog.Level(100)

// NewLogger creates a text logger writing to w at the given level. Passing a
// *slog.LevelVar lets the level change after flags are parsed.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger creates a logger that discards all output.
func NewDiscardLogger() *slog.Logger {
	return NewLogger(io.Discard, LevelQuiet)
}

// LevelFromVerbosity converts CLI flags to a slog.Level.
// - quiet: nothing is logged
// - verbose: debug, including every pipeline step's parameters
// - otherwise: warn
func LevelFromVerbosity(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return LevelQuiet
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

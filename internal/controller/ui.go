// Package controller provides output adapters for displaying rewrite results.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/tspaths/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to single run mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithWatchMode sets the UI to watch mode, where results are printed after
// every run and never block on user input.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying rewrite results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayAliases(aliases []m.Alias) error
	// DisplayChanges shows the files that changed. emitted is false when the
	// changes were only computed (--noEmit).
	DisplayChanges(changes []m.FileChange, emitted bool) error
}

func countSpecifiers(changes []m.FileChange) int {
	total := 0
	for _, change := range changes {
		total += len(change.Changes)
	}

	return total
}

func summaryLine(files int, emitted bool) string {
	if emitted {
		return fmt.Sprintf("changed %d file(s)", files)
	}

	return fmt.Sprintf("discovered %d file(s) for change (none actually changed since --noEmit was given)", files)
}

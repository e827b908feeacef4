package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ciEnvVars are set by CI runners, where output is captured even when a
// pseudo-terminal is attached.
var ciEnvVars = []string{"CI", "BUILD_NUMBER", "TF_BUILD"}

// NewUI returns the TUI when interactive is true and the plain table
// output otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// Interactive reports whether results written to w can be browsed: w is a
// terminal, TERM is not "dumb" and no CI runner is detected.
func Interactive(w io.Writer) bool {
	if !IsTTY(w) || os.Getenv("TERM") == "dumb" {
		return false
	}

	for _, name := range ciEnvVars {
		if os.Getenv(name) != "" {
			return false
		}
	}

	return true
}

// IsTTY checks if the given writer is a character device.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tspaths/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayAliases prints one row per alias.
func (s *SimpleUI) DisplayAliases(aliases []m.Alias) error {
	if len(aliases) == 0 {
		s.printf("no aliases configured\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Alias", "Prefix", "Paths"})

	for _, alias := range aliases {
		paths := make([]string, 0, len(alias.Paths))
		for _, p := range alias.Paths {
			paths = append(paths, string(p))
		}

		table.Append([]string{alias.Key, alias.Prefix, strings.Join(paths, "\n")})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayChanges prints a table of rewritten specifiers followed by a summary.
func (s *SimpleUI) DisplayChanges(changes []m.FileChange, emitted bool) error {
	if len(changes) > 0 {
		var tableBuffer bytes.Buffer

		table := newTable(&tableBuffer)
		table.SetHeader([]string{"File", "Original", "Replacement"})

		for _, change := range changes {
			file := string(change.File)
			for _, textChange := range change.Changes {
				table.Append([]string{file, textChange.Original, textChange.Replacement})
				file = ""
			}
		}

		table.SetFooter([]string{
			fmt.Sprintf("Total Files %d", len(changes)),
			"",
			fmt.Sprintf("%d", countSpecifiers(changes)),
		})

		table.Render()
		s.printf("\n%s", tableBuffer.String())
	}

	summary := summaryLine(len(changes), emitted)
	if s.mode == ModeWatch {
		summary = time.Now().Format("15:04:05") + " " + summary
	}

	s.printf("%s\n", summary)

	return nil
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

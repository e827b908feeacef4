package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/tspaths/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	mode   StartMode
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = newStartConfig(options).mode

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {}

// DisplayAliases renders the alias mappings.
func (t *TUI) DisplayAliases(aliases []m.Alias) error {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	arrowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if len(aliases) == 0 {
		_, err := fmt.Fprintln(t.output, "no aliases configured")
		return err
	}

	for _, alias := range aliases {
		if _, err := fmt.Fprintln(t.output, keyStyle.Render(alias.Key)); err != nil {
			return err
		}

		for _, p := range alias.Paths {
			line := fmt.Sprintf("  %s %s", arrowStyle.Render("→"), pathStyle.Render(string(p)))
			if _, err := fmt.Fprintln(t.output, line); err != nil {
				return err
			}
		}
	}

	return nil
}

// DisplayChanges shows the changed files. Short lists and watch mode print a
// static view; long lists open a browsable list.
func (t *TUI) DisplayChanges(changes []m.FileChange, emitted bool) error {
	model := newChangesModel(changes, emitted)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if t.mode == ModeWatch || !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

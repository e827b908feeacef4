package controller

import (
	"bytes"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tspaths/internal/model"
)

func sampleChanges(n int) []m.FileChange {
	changes := make([]m.FileChange, 0, n)
	for i := 0; i < n; i++ {
		changes = append(changes, m.FileChange{
			File:    m.Path(fmt.Sprintf("/dist/file%d.js", i)),
			Changes: []m.TextChange{{Original: "@lib/x", Replacement: "./lib/x.js"}},
		})
	}

	return changes
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "short", width: 10, want: "short"},
		{name: "exact", text: "exact", width: 5, want: "exact"},
		{name: "truncated", text: "/a/long/path.js", width: 8, want: "/a/long…"},
		{name: "width one", text: "abc", width: 1, want: "…"},
		{name: "zero width", text: "abc", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateToWidth(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), max(tt.width, 0))
		})
	}
}

func TestChangesModel_NeedsPagination(t *testing.T) {
	model := newChangesModel(sampleChanges(3), true).resize(80, 24)
	assert.False(t, model.needsPagination())

	model = newChangesModel(sampleChanges(30), true).resize(80, 24)
	assert.True(t, model.needsPagination())

	model = model.resize(80, 60)
	assert.False(t, model.needsPagination())
}

func TestChangesModel_StaticView(t *testing.T) {
	view := newChangesModel(sampleChanges(2), false).staticView()

	assert.Contains(t, view, "tspaths")
	assert.Contains(t, view, "/dist/file0.js")
	assert.Contains(t, view, "/dist/file1.js")
	assert.Contains(t, view, "@lib/x → ./lib/x.js")
	assert.Contains(t, view, "none actually changed")
}

func TestChangesModel_Update(t *testing.T) {
	model := newChangesModel(sampleChanges(2), true)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, updated.(changesModel).showDetail)

	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, updated.(changesModel).width)
	assert.Equal(t, 40, updated.(changesModel).height)

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_DisplayChangesStatic(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	require.NoError(t, ui.Start(WithWatchMode()))

	require.NoError(t, ui.DisplayChanges(sampleChanges(50), true))

	assert.Contains(t, out.String(), "/dist/file49.js")
	assert.Contains(t, out.String(), "changed 50 file(s)")
}

func TestTUI_DisplayAliases(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)

	require.NoError(t, ui.DisplayAliases([]m.Alias{
		{Key: "@lib/*", Prefix: "@lib/", Paths: []m.Path{"/project/src/lib/"}},
	}))

	assert.Contains(t, out.String(), "@lib/*")
	assert.Contains(t, out.String(), "/project/src/lib/")
}

package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/tspaths/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// Title, summary, headers, borders and footer.
	chromeHeight = 9
	countWidth   = 6
)

// changesDelegate renders one changed file per line.
type changesDelegate struct{}

func (d changesDelegate) Height() int  { return 1 }
func (d changesDelegate) Spacing() int { return 0 }
func (d changesDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d changesDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	pathStyle, countStyle := itemStyles(index == lm.Index())
	width := lm.Width() - countWidth - 2

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.count)),
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func itemStyles(selected bool) (lipgloss.Style, lipgloss.Style) {
	if selected {
		pathStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(countWidth).
			Align(lipgloss.Right)

		return pathStyle, countStyle
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(countWidth).
		Align(lipgloss.Right)

	return pathStyle, countStyle
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// changesModel lists the files a run changed, with the selected file's
// specifier replacements below the list.
type changesModel struct {
	width      int
	height     int
	fileList   list.Model
	items      []fileItem
	total      int
	emitted    bool
	showDetail bool
}

func newChangesModel(changes []m.FileChange, emitted bool) changesModel {
	items := make([]fileItem, 0, len(changes))
	listItems := make([]list.Item, 0, len(changes))

	for _, change := range changes {
		details := make([]string, 0, len(change.Changes))
		for _, tc := range change.Changes {
			details = append(details, fmt.Sprintf("%s → %s", tc.Original, tc.Replacement))
		}

		item := fileItem{path: string(change.File), count: len(change.Changes), details: details}
		items = append(items, item)
		listItems = append(listItems, item)
	}

	fileList := list.New(listItems, changesDelegate{}, defaultWidth, defaultHeight)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	model := changesModel{
		fileList:   fileList,
		items:      items,
		total:      countSpecifiers(changes),
		emitted:    emitted,
		showDetail: true,
	}

	return model.resize(defaultWidth, defaultHeight)
}

func (cm changesModel) resize(width, height int) changesModel {
	cm.width = width
	cm.height = height

	listHeight := height - chromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	cm.fileList.SetSize(width-6, listHeight)

	return cm
}

func (cm changesModel) needsPagination() bool {
	return len(cm.items)+chromeHeight > cm.height
}

func (cm changesModel) Init() tea.Cmd {
	return nil
}

func (cm changesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return cm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if cm.fileList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return cm, tea.Quit
			case "enter":
				cm.showDetail = !cm.showDetail
				return cm, nil
			}
		}
	}

	var cmd tea.Cmd

	cm.fileList, cmd = cm.fileList.Update(msg)

	return cm, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(4)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (cm changesModel) header() string {
	title := titleStyle.Render("tspaths")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s   Specifiers: %s   %s",
		accentStyle.Render(fmt.Sprintf("%d", len(cm.items))),
		accentStyle.Render(fmt.Sprintf("%d", cm.total)),
		summaryLine(len(cm.items), cm.emitted),
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary)
}

func (cm changesModel) View() string {
	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(cm.fileList.Width()).
		Render(fmt.Sprintf("%*s  %s", countWidth, "Count", "File Path"))

	table := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, cm.fileList.View()))

	sections := []string{cm.header(), table}

	if cm.showDetail {
		if item, ok := cm.fileList.SelectedItem().(fileItem); ok {
			sections = append(sections, detailStyle.Render(strings.Join(item.details, "\n")))
		}
	}

	footer := footerStyle.
		Align(lipgloss.Center).
		Width(cm.width).
		Render("↑/k up • ↓/j down • enter details • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, append(sections, footer)...)
}

// staticView prints every changed file with its replacements, for output that
// does not need scrolling.
func (cm changesModel) staticView() string {
	var b strings.Builder

	b.WriteString(cm.header())
	b.WriteString("\n")

	pathStyle, countStyle := itemStyles(false)

	for _, item := range cm.items {
		fmt.Fprintf(&b, "%s  %s\n",
			countStyle.Render(fmt.Sprintf("%d", item.count)),
			pathStyle.Render(item.path),
		)

		for _, detail := range item.details {
			b.WriteString(detailStyle.Render(detail))
			b.WriteString("\n")
		}
	}

	return b.String()
}

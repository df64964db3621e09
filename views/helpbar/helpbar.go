package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp  []HelpEntry
	viewHelp    []HelpEntry
	width       int
	minColWidth int
}

const (
	defaultMinColWidth = 20
	rowsPerColumn      = 4
)

var keyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("39")).
	Bold(true)

func New(width int) *Model {
	return &Model{
		globalHelp:  []HelpEntry{{Key: "q", Desc: "quit"}, {Key: ":", Desc: "command"}},
		width:       width,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

// View renders the header: the status block on the left, help columns next
// to it and the badge on the right. Entries that do not fit are dropped.
func (m *Model) View(status, badge string) string {
	allHelp := append(append([]HelpEntry{}, m.globalHelp...), m.viewHelp...)

	availableWidth := m.width - lipgloss.Width(status) - lipgloss.Width(badge) - 2
	if len(allHelp) == 0 || availableWidth < m.minColWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", badge)
	}

	numCols := (len(allHelp) + rowsPerColumn - 1) / rowsPerColumn
	numCols = min(numCols, max(availableWidth/m.minColWidth, 1))

	// Columns are filled top to bottom.
	columns := make([][]HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	var rendered []string
	for i, col := range columns {
		if i > 0 {
			rendered = append(rendered, "   ")
		}
		rendered = append(rendered, renderColumn(col))
	}

	helpBlock := lipgloss.NewStyle().
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))

	return lipgloss.JoinHorizontal(lipgloss.Top, status, helpBlock, "  ", badge)
}

func renderColumn(col []HelpEntry) string {
	maxKeyLen := 0
	for _, entry := range col {
		maxKeyLen = max(maxKeyLen, lipgloss.Width("<"+entry.Key+">"))
	}

	lines := make([]string, 0, len(col))
	for _, entry := range col {
		keyText := "<" + entry.Key + ">"
		padding := maxKeyLen - lipgloss.Width(keyText)
		lines = append(lines, keyStyle.Render(keyText)+strings.Repeat(" ", padding+2)+entry.Desc)
	}
	return strings.Join(lines, "\n")
}

package confirmdialog

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"goway/ui"
)

// ResultMsg is emitted once the question is answered. Tag is whatever was
// passed to Ask, so one dialog can serve several questions.
type ResultMsg struct {
	Tag       string
	Confirmed bool
}

type Model struct {
	visible bool
	message string
	tag     string
}

func New() *Model { return &Model{} }

// Ask shows message and remembers tag for the answer.
func (m *Model) Ask(tag, message string) {
	m.visible = true
	m.tag = tag
	m.message = message
}

func (m *Model) Visible() bool { return m.visible }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.visible {
		return nil
	}

	var confirmed bool
	switch key.String() {
	case "y", "Y", "enter":
		confirmed = true
	case "n", "N", "esc":
	default:
		return nil
	}

	tag := m.tag
	m.visible, m.tag, m.message = false, "", ""
	return func() tea.Msg { return ResultMsg{Tag: tag, Confirmed: confirmed} }
}

func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	lines := []string{
		"",
		fmt.Sprintf("  ⚠️  %s  ", m.message),
		"",
		"  [y] Yes   [n] No",
		"",
	}
	return ui.RenderFramedBox("Confirm", "", strings.Join(lines, "\n"), "", 0, 0)
}

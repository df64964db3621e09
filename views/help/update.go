package helpview

import (
	tea "github.com/charmbracelet/bubbletea"
)

// chrome is the frame border, header and footer around the viewport.
const chrome = 4

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		if k := msg.String(); k == "esc" || k == "q" || k == "?" {
			return func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = max(width-2, 1)
	m.viewport.Height = max(height-chrome, 1)
}

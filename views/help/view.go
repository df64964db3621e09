package helpview

import (
	"github.com/charmbracelet/lipgloss"

	"goway/ui"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

func (m *Model) View() string {
	return ui.RenderFramedBox("Help", "Palette commands", m.viewport.View(),
		footerStyle.Render("↑/↓ scroll · q, esc or ? to close"), m.width, m.height)
}

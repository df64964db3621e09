package commandinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cmdBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Foreground(lipgloss.Color("#00d7ff")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().Faint(true)

	selectedSuggestionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00d7ff")).
				Underline(true)
)

// View renders the command bar, the suggestions and an optional error.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	view := cmdBarStyle.Render(m.input.View())

	if len(m.suggestions) > 0 {
		parts := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			if i == m.selected {
				parts[i] = selectedSuggestionStyle.Render(s)
			} else {
				parts[i] = suggestionStyle.Render(s)
			}
		}
		view += "  " + strings.Join(parts, "  ")
	}

	if m.errorMsg != "" {
		view += "\n" + errStyle.Render(m.errorMsg)
	}

	return view
}

package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"goway/views/helpbar"
)

// View is one screen of the app. The top of the navigation stack decides
// which View is shown.
type View interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	Name() string
	ShortHelpItems() []helpbar.HelpEntry
}

package helpview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"goway/registry"
	"goway/views/helpbar"
	"goway/views/view"
)

// ShowMsg opens the help overlay.
type ShowMsg struct{}

// CloseMsg is emitted when the overlay is dismissed.
type CloseMsg struct{}

type Model struct {
	viewport viewport.Model
	width    int
	height   int
}

type CommandInfo struct {
	Usage       string
	Description string
}

// Commands lists the registered palette commands, aliases last.
func Commands() []CommandInfo {
	var primary, aliases []CommandInfo
	for _, c := range registry.All() {
		info := CommandInfo{Usage: c.Usage(), Description: c.Description()}
		if fields := strings.Fields(c.Usage()); len(fields) > 0 && fields[0] != c.Name() {
			info.Usage = c.Name()
			aliases = append(aliases, info)
			continue
		}
		primary = append(primary, info)
	}
	return append(primary, aliases...)
}

func New(width, height int) *Model {
	var b strings.Builder
	for _, c := range Commands() {
		fmt.Fprintf(&b, ":%-42s %s\n", c.Usage, c.Description)
	}

	m := &Model{viewport: viewport.New(0, 0)}
	m.resize(width, height)
	m.viewport.SetContent(strings.TrimRight(b.String(), "\n"))
	return m
}

func (m *Model) Name() string { return view.NameHelp }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "↑/↓", Desc: "scroll"},
		{Key: "esc", Desc: "close"},
	}
}

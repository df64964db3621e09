package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"goway/args"
	"goway/registry"
	helpview "goway/views/help"
)

type Help struct{}

func (Help) Name() string        { return "help" }
func (Help) Usage() string       { return "help" }
func (Help) Description() string { return "Show all available commands" }

func (Help) Execute(ctx registry.Context, _ args.Args) (tea.Cmd, error) {
	return msgCmd(helpview.ShowMsg{}), nil
}

func init() {
	registerWithAliases(Help{}, "?")
}

package registry

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"goway/args"
	"goway/venue"
)

// Context is what a palette command can see. Commands never touch the
// navigation stack directly; they return messages for the UI loop.
type Context struct {
	Catalog *venue.Static
}

type Command interface {
	Name() string
	Usage() string
	Description() string
	Execute(ctx Context, a args.Args) (tea.Cmd, error)
}

var apiRegistry = map[string]Command{}

// Register a new command (called from the init of each command file)
func Register(cmd Command) {
	apiRegistry[cmd.Name()] = cmd
}

// Get returns a command by name
func Get(name string) (Command, bool) {
	cmd, ok := apiRegistry[name]
	return cmd, ok
}

// All returns every registered command sorted by name
func All() []Command {
	cmds := make([]Command, 0, len(apiRegistry))
	for _, c := range apiRegistry {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Suggest returns all command names that start with a given prefix, sorted
func Suggest(prefix string) []string {
	var out []string
	for name := range apiRegistry {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

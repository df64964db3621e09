// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"goway/args"
	"goway/commands/api"
	"goway/destination"
	"goway/registry"
	"goway/views/view"
)

// Go pushes a category screen directly, without the coordinator.
type Go struct{}

func (Go) Name() string        { return "go" }
func (Go) Usage() string       { return "go <category>" }
func (Go) Description() string { return "Open a category screen" }

func (c Go) Execute(_ registry.Context, a args.Args) (tea.Cmd, error) {
	if len(a.Positionals) != 1 {
		return nil, api.UsageError(c.Usage())
	}
	k, ok := destination.ParseCategory(a.Positionals[0])
	if !ok {
		return nil, fmt.Errorf("unknown category %q", a.Positionals[0])
	}
	return msgCmd(view.NavigateToMsg{Destination: destination.Category(k)}), nil
}

type Back struct{}

func (Back) Name() string        { return "back" }
func (Back) Usage() string       { return "back [levels|category]" }
func (Back) Description() string { return "Go back one or more screens, or to before a category" }

func (c Back) Execute(_ registry.Context, a args.Args) (tea.Cmd, error) {
	levels := 1
	switch len(a.Positionals) {
	case 0:
	case 1:
		raw := a.Positionals[0]
		if k, ok := destination.ParseCategory(raw); ok {
			return msgCmd(view.PopToMsg{Destination: destination.Category(k)}), nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, api.UsageError(c.Usage())
		}
		levels = n
	default:
		return nil, api.UsageError(c.Usage())
	}
	return msgCmd(view.NavigateBackMsg{Levels: levels}), nil
}

type Root struct{}

func (Root) Name() string        { return "root" }
func (Root) Usage() string       { return "root" }
func (Root) Description() string { return "Return to the home screen" }

func (Root) Execute(registry.Context, args.Args) (tea.Cmd, error) {
	return msgCmd(view.NavigateRootMsg{}), nil
}

type Search struct{}

func (Search) Name() string        { return "search" }
func (Search) Usage() string       { return "search <query>" }
func (Search) Description() string { return "Search buildings and vendors" }

func (Search) Execute(_ registry.Context, a args.Args) (tea.Cmd, error) {
	return msgCmd(view.SearchMsg{Query: a.Joined()}), nil
}

func init() {
	registerWithAliases(Go{}, "g")
	registry.Register(Back{})
	registerWithAliases(Root{}, "home")
	registerWithAliases(Search{}, "/")
}

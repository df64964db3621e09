package api

import (
	"strings"

	"goway/args"
	"goway/registry"
)

// ParseInput takes a full input string like:
// "vendor kopi kenangan --building=gop9"
// It returns the matching Command and parsed Args.
func ParseInput(input string) (registry.Command, args.Args, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, args.Args{}, ErrEmptyCommand
	}

	parts := strings.Fields(input)

	// Find longest matching command name
	var cmd registry.Command
	var ok bool
	for i := len(parts); i > 0; i-- {
		tryName := strings.ToLower(strings.Join(parts[:i], " "))
		if c, found := registry.Get(tryName); found {
			cmd = c
			ok = true
			parts = parts[i:] // remaining = args + flags
			break
		}
	}

	if !ok {
		return nil, args.Args{}, ErrUnknownCommand(input)
	}

	return cmd, parseArgs(parts), nil
}

// parseArgs separates flags from positionals. A flag written as
// --name=value keeps collecting the words that follow it until the next
// flag, so "--building=green office park 9" needs no quoting. A bare --name
// is set to "true".
func parseArgs(parts []string) args.Args {
	a := args.Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	open := ""
	for _, p := range parts {
		name, isFlag := strings.CutPrefix(p, "--")
		switch {
		case isFlag:
			open = ""
			if n, v, hasValue := strings.Cut(name, "="); hasValue {
				a.Flags[n] = v
				open = n
			} else {
				a.Flags[name] = "true"
			}
		case open != "":
			a.Flags[open] += " " + p
		default:
			a.Positionals = append(a.Positionals, p)
		}
	}

	return a
}

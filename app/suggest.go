// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"sort"
	"strings"

	"goway/destination"
	"goway/registry"
	"goway/venue"
)

// suggest completes command names, then the argument of the commands that
// take a category or a vendor type.
func suggest(value string) []string {
	name, rest, found := strings.Cut(value, " ")
	if !found {
		return registry.Suggest(strings.ToLower(name))
	}

	var candidates []string
	switch strings.ToLower(name) {
	case "go", "g":
		for _, k := range destination.Categories {
			candidates = append(candidates, string(k))
		}
	case "type", "t":
		for _, t := range venue.VendorTypes {
			candidates = append(candidates, string(t))
		}
	default:
		return nil
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, strings.TrimSpace(rest)) {
			out = append(out, name+" "+c)
		}
	}
	sort.Strings(out)
	return out
}

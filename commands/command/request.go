// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"goway/args"
	"goway/commands/api"
	"goway/coordinator"
	"goway/registry"
	"goway/venue"
	"goway/views/view"
)

// The request commands are the in-app trigger surface of the coordinator:
// they go through the same debounce guard as voice shortcuts and the CLI.

type Building struct{}

func (Building) Name() string        { return "building" }
func (Building) Usage() string       { return "building <id|name>" }
func (Building) Description() string { return "Open a building through the navigation coordinator" }

func (c Building) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	ref := a.Joined()
	if ref == "" {
		return nil, api.UsageError(c.Usage())
	}
	b, ok := ctx.Catalog.LookupBuilding(ref)
	if !ok {
		return nil, fmt.Errorf("no building matches %q", ref)
	}
	return msgCmd(coordinator.RequestMsg{Request: coordinator.ToBuilding(b)}), nil
}

type Vendor struct{}

func (Vendor) Name() string        { return "vendor" }
func (Vendor) Usage() string       { return "vendor <id|name> [--building=<id|name>]" }
func (Vendor) Description() string { return "Open a vendor through the navigation coordinator" }

func (c Vendor) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	ref := a.Joined()
	if ref == "" {
		return nil, api.UsageError(c.Usage())
	}

	if a.Has("building") {
		b, ok := ctx.Catalog.LookupBuilding(a.Get("building"))
		if !ok {
			return nil, fmt.Errorf("no building matches %q", a.Get("building"))
		}
		for _, v := range b.Vendors {
			if v.ID == ref || strings.EqualFold(v.Name, ref) {
				return msgCmd(coordinator.RequestMsg{Request: coordinator.ToVendor(v)}), nil
			}
		}
		return nil, fmt.Errorf("no vendor matches %q in %s", ref, b.Name)
	}

	v, ok := ctx.Catalog.LookupVendor(ref)
	if !ok {
		return nil, fmt.Errorf("no vendor matches %q", ref)
	}
	return msgCmd(coordinator.RequestMsg{Request: coordinator.ToVendor(v)}), nil
}

type VendorType struct{}

func (VendorType) Name() string  { return "type" }
func (VendorType) Usage() string { return "type <" + strings.Join(vendorTypeNames(), "|") + ">" }
func (VendorType) Description() string {
	return "Open a vendor category through the navigation coordinator"
}

func (c VendorType) Execute(_ registry.Context, a args.Args) (tea.Cmd, error) {
	if len(a.Positionals) != 1 {
		return nil, api.UsageError(c.Usage())
	}
	t, err := venue.ParseVendorType(a.Positionals[0])
	if err != nil {
		return nil, err
	}
	return msgCmd(coordinator.RequestMsg{Request: coordinator.ToVendorType(t)}), nil
}

// Cancel drops the pending request after confirmation.
type Cancel struct{}

func (Cancel) Name() string        { return "cancel" }
func (Cancel) Usage() string       { return "cancel" }
func (Cancel) Description() string { return "Discard the pending navigation request" }

func (Cancel) Execute(registry.Context, args.Args) (tea.Cmd, error) {
	return msgCmd(view.CancelNavigationMsg{}), nil
}

func vendorTypeNames() []string {
	names := make([]string, len(venue.VendorTypes))
	for i, t := range venue.VendorTypes {
		names[i] = string(t)
	}
	return names
}

func init() {
	registerWithAliases(Building{}, "b")
	registerWithAliases(Vendor{}, "v")
	registerWithAliases(VendorType{}, "t")
	registry.Register(Cancel{})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goway/args"
	"goway/commands/api"
	"goway/coordinator"
	"goway/destination"
	"goway/registry"
	"goway/venue"
	helpview "goway/views/help"
	"goway/views/view"
)

func ctx() registry.Context {
	return registry.Context{Catalog: venue.Default()}
}

func positional(p ...string) args.Args {
	return args.Args{Positionals: p, Flags: map[string]string{}}
}

func exec(t *testing.T, c registry.Command, a args.Args) any {
	t.Helper()
	cmd, err := c.Execute(ctx(), a)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	return cmd()
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"building", "b", "vendor", "v", "type", "t", "go", "g", "back", "root", "home", "search", "/", "help", "?", "cancel"} {
		_, ok := registry.Get(name)
		assert.True(t, ok, name)
	}
	assert.Equal(t, []string{"b", "back", "building"}, registry.Suggest("b"))
}

func TestBuilding(t *testing.T) {
	msg := exec(t, Building{}, positional("the", "breeze")).(coordinator.RequestMsg)
	assert.Equal(t, coordinator.KindBuilding, msg.Request.Kind)
	assert.Equal(t, "The Breeze", msg.Request.Building.Name)

	_, err := Building{}.Execute(ctx(), positional())
	assert.ErrorIs(t, err, api.ErrUsage)

	_, err = Building{}.Execute(ctx(), positional("Atlantis"))
	assert.EqualError(t, err, `no building matches "Atlantis"`)
}

func TestVendor(t *testing.T) {
	msg := exec(t, Vendor{}, positional("Uniqlo")).(coordinator.RequestMsg)
	assert.Equal(t, coordinator.KindVendor, msg.Request.Kind)
	assert.Equal(t, venue.Lifestyle, msg.Request.Vendor.Type)

	a := positional("Uniqlo")
	a.Flags["building"] = "Green Office Park 9"
	_, err := Vendor{}.Execute(ctx(), a)
	assert.ErrorContains(t, err, "in Green Office Park 9")

	a.Flags["building"] = "The Breeze"
	msg = exec(t, Vendor{}, a).(coordinator.RequestMsg)
	assert.Equal(t, "Uniqlo", msg.Request.Vendor.Name)
}

func TestVendorType(t *testing.T) {
	msg := exec(t, VendorType{}, positional("worship")).(coordinator.RequestMsg)
	assert.Equal(t, coordinator.ToVendorType(venue.Worship), msg.Request)

	_, err := VendorType{}.Execute(ctx(), positional("spaceport"))
	assert.Error(t, err)
	_, err = VendorType{}.Execute(ctx(), positional("food", "busway"))
	assert.ErrorIs(t, err, api.ErrUsage)
}

func TestGo(t *testing.T) {
	msg := exec(t, Go{}, positional("office")).(view.NavigateToMsg)
	assert.Equal(t, destination.KindOffice, msg.Destination.Kind)
	assert.False(t, msg.Replace)

	// Vendor type names map onto their category.
	msg = exec(t, Go{}, positional("worship")).(view.NavigateToMsg)
	assert.Equal(t, destination.KindPraying, msg.Destination.Kind)

	_, err := Go{}.Execute(ctx(), positional("mars"))
	assert.Error(t, err)
}

func TestBack(t *testing.T) {
	assert.Equal(t, view.NavigateBackMsg{Levels: 1}, exec(t, Back{}, positional()))
	assert.Equal(t, view.NavigateBackMsg{Levels: 3}, exec(t, Back{}, positional("3")))

	assert.Equal(t, view.PopToMsg{Destination: destination.Category(destination.KindFood)},
		exec(t, Back{}, positional("food")))

	_, err := Back{}.Execute(ctx(), positional("-1"))
	assert.ErrorIs(t, err, api.ErrUsage)
}

func TestRootSearchHelp(t *testing.T) {
	assert.Equal(t, view.NavigateRootMsg{}, exec(t, Root{}, positional()))
	assert.Equal(t, view.SearchMsg{Query: "kopi kenangan"}, exec(t, Search{}, positional("kopi", "kenangan")))
	assert.Equal(t, helpview.ShowMsg{}, exec(t, Help{}, positional()))
	assert.Equal(t, view.CancelNavigationMsg{}, exec(t, Cancel{}, positional()))
}

func TestAlias(t *testing.T) {
	c, ok := registry.Get("home")
	require.True(t, ok)
	assert.Equal(t, "alias of root", c.Description())
	assert.Equal(t, view.NavigateRootMsg{}, exec(t, c, positional()))
}

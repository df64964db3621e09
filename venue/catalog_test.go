// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IdsAreStable(t *testing.T) {
	a := Default()
	b := Default()

	require.NotEmpty(t, a.AllVendors())
	for i, v := range a.AllVendors() {
		assert.Equal(t, v.ID, b.AllVendors()[i].ID)
		assert.NotEmpty(t, v.BuildingID)
	}
	assert.Equal(t, BuildingID("The Breeze"), a.AllBuildings()[2].ID)
}

func TestStatic_Find(t *testing.T) {
	s := NewStatic([]Building{{
		ID:   "b1",
		Name: "Tower",
		Vendors: []Vendor{
			{ID: "v1", Name: "Cafe", Type: Food, Steps: []Step{{Description: "left"}}},
		},
	}})

	v, ok := s.FindVendor("v1")
	require.True(t, ok)
	assert.Equal(t, "b1", v.BuildingID)
	require.Len(t, v.Steps, 1)
	assert.NotEmpty(t, v.Steps[0].ID)

	_, ok = s.FindVendor("nope")
	assert.False(t, ok)

	b, ok := s.FindBuilding("b1")
	require.True(t, ok)
	assert.Equal(t, "Tower", b.Name)

	v, ok = s.LookupVendor("cafe")
	require.True(t, ok)
	assert.Equal(t, "v1", v.ID)
	_, ok = s.LookupBuilding("TOWER")
	assert.True(t, ok)
}

func TestStatic_Search(t *testing.T) {
	s := Default()

	assert.Zero(t, s.Search("   ").Total())

	res := s.Search("breeze")
	require.Len(t, res.Buildings, 1)
	assert.Equal(t, "The Breeze", res.Buildings[0].Name)

	res = s.Search("food")
	require.Len(t, res.Vendors, 3)
	assert.GreaterOrEqual(t, res.Vendors[0].Vendor.Rating, res.Vendors[1].Vendor.Rating)

	res = s.Search("parking lot")
	require.Len(t, res.Vendors, 1)
	assert.Equal(t, "Green Office Park 1", res.Vendors[0].BuildingName)
}

func TestVendorsByType(t *testing.T) {
	byBuilding := Default().VendorsByType(Worship)
	require.Len(t, byBuilding, 1)
	assert.Len(t, byBuilding["Green Office Park 9"], 1)
}

func TestParseVendorType(t *testing.T) {
	vt, err := ParseVendorType("PARKINGLOT")
	require.NoError(t, err)
	assert.Equal(t, ParkingLot, vt)
	assert.Equal(t, "Parking Lot", vt.Description())

	_, err = ParseVendorType("casino")
	assert.Error(t, err)
}

func TestParse_RejectsUnknownType(t *testing.T) {
	_, err := Parse([]byte("buildings:\n  - name: X\n    vendors:\n      - name: Y\n        type: casino\n"))
	assert.ErrorContains(t, err, "casino")

	_, err = Parse([]byte("buildings: ["))
	assert.Error(t, err)
}

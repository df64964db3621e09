// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package venue

import (
	"sort"
	"strings"
)

// Catalog is the read-only data access used by navigation.
type Catalog interface {
	FindVendor(id string) (Vendor, bool)
	FindBuilding(id string) (Building, bool)
	AllVendors() []Vendor
	AllBuildings() []Building
}

// Static is an in-memory Catalog over a fixed set of buildings.
type Static struct {
	buildings  []Building
	byBuilding map[string]int
	vendors    []Vendor
	byVendor   map[string]int
}

// NewStatic indexes buildings. Missing ids are derived from names; vendors
// get their BuildingID filled in.
func NewStatic(buildings []Building) *Static {
	s := &Static{
		byBuilding: make(map[string]int, len(buildings)),
		byVendor:   make(map[string]int),
	}

	for _, b := range buildings {
		if b.ID == "" {
			b.ID = BuildingID(b.Name)
		}
		vendors := make([]Vendor, len(b.Vendors))
		for i, v := range b.Vendors {
			if v.ID == "" {
				v.ID = VendorID(b.Name, v.Name)
			}
			v.BuildingID = b.ID
			steps := make([]Step, len(v.Steps))
			for j, st := range v.Steps {
				if st.ID == "" {
					st.ID = StepID(v.ID, j)
				}
				steps[j] = st
			}
			v.Steps = steps
			vendors[i] = v

			s.byVendor[v.ID] = len(s.vendors)
			s.vendors = append(s.vendors, v)
		}
		b.Vendors = vendors

		s.byBuilding[b.ID] = len(s.buildings)
		s.buildings = append(s.buildings, b)
	}
	return s
}

func (s *Static) FindVendor(id string) (Vendor, bool) {
	i, ok := s.byVendor[id]
	if !ok {
		return Vendor{}, false
	}
	return s.vendors[i], true
}

func (s *Static) FindBuilding(id string) (Building, bool) {
	i, ok := s.byBuilding[id]
	if !ok {
		return Building{}, false
	}
	return s.buildings[i], true
}

func (s *Static) AllVendors() []Vendor {
	out := make([]Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out
}

func (s *Static) AllBuildings() []Building {
	out := make([]Building, len(s.buildings))
	copy(out, s.buildings)
	return out
}

// VendorsByType groups vendors of type t by building name.
func (s *Static) VendorsByType(t VendorType) map[string][]Vendor {
	out := make(map[string][]Vendor)
	for _, b := range s.buildings {
		for _, v := range b.Vendors {
			if v.Type == t {
				out[b.Name] = append(out[b.Name], v)
			}
		}
	}
	return out
}

// LookupVendor resolves ref as an id first, then as a case-insensitive name.
func (s *Static) LookupVendor(ref string) (Vendor, bool) {
	if v, ok := s.FindVendor(ref); ok {
		return v, true
	}
	for _, v := range s.vendors {
		if strings.EqualFold(v.Name, ref) {
			return v, true
		}
	}
	return Vendor{}, false
}

// LookupBuilding resolves ref as an id first, then as a case-insensitive name.
func (s *Static) LookupBuilding(ref string) (Building, bool) {
	if b, ok := s.FindBuilding(ref); ok {
		return b, true
	}
	for _, b := range s.buildings {
		if strings.EqualFold(b.Name, ref) {
			return b, true
		}
	}
	return Building{}, false
}

// VendorResult is a search hit with the name of the building it sits in.
type VendorResult struct {
	Vendor       Vendor
	BuildingName string
}

// Results of a Search.
type Results struct {
	Buildings []Building
	Vendors   []VendorResult
}

// Total number of hits.
func (r Results) Total() int { return len(r.Buildings) + len(r.Vendors) }

// Search matches buildings by name and vendors by name or type description.
// An empty query matches nothing.
func (s *Static) Search(query string) Results {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Results{}
	}

	var res Results
	for _, b := range s.buildings {
		if strings.Contains(strings.ToLower(b.Name), q) {
			res.Buildings = append(res.Buildings, b)
		}
		for _, v := range b.Vendors {
			if strings.Contains(strings.ToLower(v.Name), q) ||
				strings.Contains(strings.ToLower(v.Type.Description()), q) {
				res.Vendors = append(res.Vendors, VendorResult{Vendor: v, BuildingName: b.Name})
			}
		}
	}

	sort.SliceStable(res.Vendors, func(i, j int) bool {
		return res.Vendors[i].Vendor.Rating > res.Vendors[j].Vendor.Rating
	})
	return res
}

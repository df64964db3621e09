// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package destination describes the screens the navigation stack can show.
//
// A Destination is identified by its Kind and entity ids only. Display
// fields such as Title never take part in equality, hashing or encoding.
package destination

import (
	"fmt"
	"slices"
	"strings"

	"goway/core/primitives/hash"
	"goway/venue"
)

// Kind tags a Destination.
type Kind string

const (
	KindSearch         Kind = "search"
	KindBusway         Kind = "busway"
	KindEntertainment  Kind = "entertainment"
	KindFood           Kind = "food"
	KindOffice         Kind = "office"
	KindParking        Kind = "parking"
	KindLifestyle      Kind = "lifestyle"
	KindPraying        Kind = "praying"
	KindOther          Kind = "other"
	KindVendorDetail   Kind = "vendorDetail"
	KindARNavigation   Kind = "arNavigation"
	KindAROnboarding   Kind = "arOnboarding"
	KindStepNavigation Kind = "stepNavigation"
	KindBuildingDetail Kind = "buildingDetail"
)

// Categories are the payload-free kinds shown on the home grid.
var Categories = []Kind{
	KindBusway, KindEntertainment, KindFood, KindOffice,
	KindParking, KindLifestyle, KindPraying, KindOther,
}

// IsCategory reports whether k carries no payload.
func (k Kind) IsCategory() bool {
	return k == KindSearch || slices.Contains(Categories, k)
}

func (k Kind) vendorBearing() bool {
	switch k {
	case KindVendorDetail, KindARNavigation, KindAROnboarding, KindStepNavigation:
		return true
	}
	return false
}

func (k Kind) valid() bool {
	return k.IsCategory() || k.vendorBearing() || k == KindBuildingDetail
}

// Destination is a target screen plus the entity ids needed to render it.
type Destination struct {
	Kind       Kind
	VendorID   string
	BuildingID string
	// IsRecommended is only meaningful for KindVendorDetail; nil means unknown.
	IsRecommended *bool
	// StepIDs is encoded but not part of identity.
	StepIDs []string
	// Title is a display label captured at construction time.
	Title string
}

// identity is the hashed projection of a Destination.
type identity struct {
	Kind        Kind
	VendorID    string
	BuildingID  string
	Recommended int8
}

// Category returns the payload-free destination of kind k.
func Category(k Kind) Destination {
	return Destination{Kind: k}
}

func Search() Destination { return Destination{Kind: KindSearch} }

func VendorDetail(v venue.Vendor, isRecommended *bool) Destination {
	return Destination{Kind: KindVendorDetail, VendorID: v.ID, IsRecommended: isRecommended, Title: v.Name}
}

func ARNavigation(v venue.Vendor) Destination {
	return Destination{Kind: KindARNavigation, VendorID: v.ID, Title: v.Name}
}

func AROnboarding(v venue.Vendor) Destination {
	return Destination{Kind: KindAROnboarding, VendorID: v.ID, Title: v.Name}
}

// StepNavigation keeps the vendor's step ids in route order.
func StepNavigation(v venue.Vendor) Destination {
	ids := make([]string, len(v.Steps))
	for i, s := range v.Steps {
		ids[i] = s.ID
	}
	return Destination{Kind: KindStepNavigation, VendorID: v.ID, StepIDs: ids, Title: v.Name}
}

func BuildingDetail(b venue.Building) Destination {
	return Destination{Kind: KindBuildingDetail, BuildingID: b.ID, Title: b.Name}
}

// ForVendorType maps a vendor type to its category screen.
func ForVendorType(t venue.VendorType) (Destination, bool) {
	k, ok := vendorTypeKinds[t]
	if !ok {
		return Destination{}, false
	}
	return Category(k), true
}

var vendorTypeKinds = map[venue.VendorType]Kind{
	venue.Food:          KindFood,
	venue.Entertainment: KindEntertainment,
	venue.Busway:        KindBusway,
	venue.ParkingLot:    KindParking,
	venue.Lifestyle:     KindLifestyle,
	venue.Worship:       KindPraying,
	venue.Other:         KindOther,
}

// ParseCategory accepts category names and vendor type names, ignoring
// case.
func ParseCategory(raw string) (Kind, bool) {
	for _, k := range Categories {
		if strings.EqualFold(string(k), raw) {
			return k, true
		}
	}
	if t, err := venue.ParseVendorType(raw); err == nil {
		if d, ok := ForVendorType(t); ok {
			return d.Kind, true
		}
	}
	return "", false
}

// VendorTypeOf is the inverse of ForVendorType for category kinds. Office
// and Search have no vendor type.
func VendorTypeOf(k Kind) (venue.VendorType, bool) {
	for t, kind := range vendorTypeKinds {
		if kind == k {
			return t, true
		}
	}
	return "", false
}

// Recommended is a helper for the optional IsRecommended flag.
func Recommended(b bool) *bool { return &b }

// Equal compares by kind and identifiers. The recommendation flag only
// counts on vendor detail screens.
func (d Destination) Equal(o Destination) bool {
	return d.Kind == o.Kind && d.VendorID == o.VendorID && d.BuildingID == o.BuildingID &&
		d.recommendation() == o.recommendation()
}

// Hash fingerprints the identity of d; equal destinations hash equally.
func (d Destination) Hash() uint64 {
	return hash.MustCompute(identity{
		Kind:        d.Kind,
		VendorID:    d.VendorID,
		BuildingID:  d.BuildingID,
		Recommended: d.recommendation(),
	})
}

// recommendation is -1 when unset or irrelevant for the kind, else 0 or 1.
func (d Destination) recommendation() int8 {
	if d.Kind != KindVendorDetail || d.IsRecommended == nil {
		return -1
	}
	if *d.IsRecommended {
		return 1
	}
	return 0
}

// Label is the text shown in breadcrumbs.
func (d Destination) Label() string {
	if d.Title != "" {
		return d.Title
	}
	switch {
	case d.VendorID != "":
		return fmt.Sprintf("%s %s", d.Kind, shortID(d.VendorID))
	case d.BuildingID != "":
		return fmt.Sprintf("%s %s", d.Kind, shortID(d.BuildingID))
	}
	return string(d.Kind)
}

func (d Destination) String() string {
	switch {
	case d.Kind == KindVendorDetail:
		rec := "nil"
		if d.IsRecommended != nil {
			rec = fmt.Sprint(*d.IsRecommended)
		}
		return fmt.Sprintf("%s(%s,%s)", d.Kind, d.VendorID, rec)
	case d.VendorID != "":
		return fmt.Sprintf("%s(%s)", d.Kind, d.VendorID)
	case d.BuildingID != "":
		return fmt.Sprintf("%s(%s)", d.Kind, d.BuildingID)
	}
	return string(d.Kind)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

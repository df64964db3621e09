// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package destination

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"goway/venue"
)

// ErrDataCorrupted is returned when encoded bytes do not describe a
// destination.
var ErrDataCorrupted = errors.New("destination data corrupted")

// ErrEntityNotFound matches any EntityNotFoundError via errors.Is.
var ErrEntityNotFound = errors.New("entity not found")

// EntityNotFoundError reports an id the resolver could not find.
type EntityNotFoundError struct {
	Entity string // "vendor" or "building"
	ID     string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}

// Resolver looks up the entities a destination refers to.
type Resolver interface {
	FindVendor(id string) (venue.Vendor, bool)
	FindBuilding(id string) (venue.Building, bool)
}

type wire struct {
	Kind          Kind     `json:"kind"`
	VendorID      string   `json:"vendorId,omitempty"`
	BuildingID    string   `json:"buildingId,omitempty"`
	IsRecommended *bool    `json:"isRecommended,omitempty"`
	StepIDs       []string `json:"stepIds,omitempty"`
}

// Serialize encodes the tag and identifiers of d.
func (d Destination) Serialize() ([]byte, error) {
	if !d.Kind.valid() {
		return nil, fmt.Errorf("serialize destination: unknown kind %q", d.Kind)
	}
	w := wire{Kind: d.Kind, VendorID: d.VendorID, BuildingID: d.BuildingID}
	if d.Kind == KindVendorDetail {
		w.IsRecommended = d.IsRecommended
	}
	if d.Kind == KindStepNavigation {
		w.StepIDs = d.StepIDs
	}
	return sonic.ConfigStd.Marshal(w)
}

// Deserialize decodes data and resolves the entity it refers to. The
// returned destination has its Title filled from the resolved entity.
func Deserialize(data []byte, r Resolver) (Destination, error) {
	var w wire
	if err := sonic.ConfigStd.Unmarshal(data, &w); err != nil {
		return Destination{}, fmt.Errorf("%w: %v", ErrDataCorrupted, err)
	}
	if !w.Kind.valid() {
		return Destination{}, fmt.Errorf("%w: unknown kind %q", ErrDataCorrupted, w.Kind)
	}

	switch {
	case w.Kind.IsCategory():
		return Category(w.Kind), nil

	case w.Kind == KindBuildingDetail:
		if w.BuildingID == "" {
			return Destination{}, fmt.Errorf("%w: %s without buildingId", ErrDataCorrupted, w.Kind)
		}
		b, ok := r.FindBuilding(w.BuildingID)
		if !ok {
			return Destination{}, &EntityNotFoundError{Entity: "building", ID: w.BuildingID}
		}
		return BuildingDetail(b), nil

	default:
		if w.VendorID == "" {
			return Destination{}, fmt.Errorf("%w: %s without vendorId", ErrDataCorrupted, w.Kind)
		}
		v, ok := r.FindVendor(w.VendorID)
		if !ok {
			return Destination{}, &EntityNotFoundError{Entity: "vendor", ID: w.VendorID}
		}
		d := Destination{Kind: w.Kind, VendorID: v.ID, Title: v.Name}
		switch w.Kind {
		case KindVendorDetail:
			d.IsRecommended = w.IsRecommended
		case KindStepNavigation:
			d.StepIDs = w.StepIDs
		}
		return d, nil
	}
}

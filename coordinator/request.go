// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package coordinator

import (
	"fmt"

	"goway/destination"
	"goway/venue"
)

// Kind is the kind of a pending navigation request.
type Kind int

const (
	KindNone Kind = iota
	KindBuilding
	KindVendor
	KindVendorType
)

// Persisted keys, one per request kind.
const (
	KeyPendingBuilding   = "pendingBuildingNavigation"
	KeyPendingVendor     = "pendingVendorNavigation"
	KeyPendingVendorType = "pendingVendorTypeNavigation"
)

// requestKinds is the order persisted keys are checked in.
var requestKinds = []Kind{KindBuilding, KindVendor, KindVendorType}

func (k Kind) String() string {
	switch k {
	case KindBuilding:
		return "building"
	case KindVendor:
		return "vendor"
	case KindVendorType:
		return "vendorType"
	default:
		return "none"
	}
}

// Key is the persisted key for k.
func (k Kind) Key() string {
	switch k {
	case KindBuilding:
		return KeyPendingBuilding
	case KindVendor:
		return KeyPendingVendor
	case KindVendorType:
		return KeyPendingVendorType
	default:
		return ""
	}
}

// Request is an intent to navigate. Only the field matching Kind is set.
type Request struct {
	Kind       Kind
	Building   venue.Building
	Vendor     venue.Vendor
	VendorType venue.VendorType
}

func ToBuilding(b venue.Building) Request {
	return Request{Kind: KindBuilding, Building: b}
}

func ToVendor(v venue.Vendor) Request {
	return Request{Kind: KindVendor, Vendor: v}
}

func ToVendorType(t venue.VendorType) Request {
	return Request{Kind: KindVendorType, VendorType: t}
}

// IsZero reports whether r is the None request.
func (r Request) IsZero() bool { return r.Kind == KindNone }

// Identifier is the stable string stored under the request's key.
func (r Request) Identifier() string {
	switch r.Kind {
	case KindBuilding:
		return r.Building.ID
	case KindVendor:
		return r.Vendor.ID
	case KindVendorType:
		return string(r.VendorType)
	default:
		return ""
	}
}

// Destination is the screen r resolves to. Vendor and building requests
// open their detail screen with no recommendation flag.
func (r Request) Destination() (destination.Destination, error) {
	switch r.Kind {
	case KindBuilding:
		return destination.BuildingDetail(r.Building), nil
	case KindVendor:
		return destination.VendorDetail(r.Vendor, nil), nil
	case KindVendorType:
		d, ok := destination.ForVendorType(r.VendorType)
		if !ok {
			return destination.Destination{}, fmt.Errorf("no destination for vendor type %q", r.VendorType)
		}
		return d, nil
	default:
		return destination.Destination{}, fmt.Errorf("no destination for an empty request")
	}
}

func (r Request) String() string {
	if r.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Identifier())
}

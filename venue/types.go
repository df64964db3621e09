// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package venue

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// VendorType is the category a vendor belongs to. The string value is the
// stable raw value used for persistence.
type VendorType string

const (
	Food          VendorType = "food"
	Entertainment VendorType = "entertainment"
	Busway        VendorType = "busway"
	ParkingLot    VendorType = "parkingLot"
	Lifestyle     VendorType = "lifestyle"
	Worship       VendorType = "worship"
	Other         VendorType = "other"
)

// VendorTypes lists every vendor type in display order.
var VendorTypes = []VendorType{Food, Entertainment, Busway, ParkingLot, Lifestyle, Worship, Other}

// ParseVendorType maps a raw value (case-insensitive) to a VendorType.
func ParseVendorType(raw string) (VendorType, error) {
	raw = strings.TrimSpace(raw)
	for _, t := range VendorTypes {
		if strings.EqualFold(string(t), raw) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown vendor type %q", raw)
}

// Description is the human-readable name of the type.
func (t VendorType) Description() string {
	switch t {
	case Food:
		return "Food"
	case Entertainment:
		return "Entertainment"
	case Busway:
		return "Busway"
	case ParkingLot:
		return "Parking Lot"
	case Lifestyle:
		return "Lifestyle"
	case Worship:
		return "Worship"
	case Other:
		return "Other"
	default:
		return string(t)
	}
}

// Step is one instruction of a walking route to a vendor.
type Step struct {
	ID          string `yaml:"-"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// Vendor is a shop, stop or facility inside a building.
type Vendor struct {
	ID         string     `yaml:"-"`
	Name       string     `yaml:"name"`
	Image      string     `yaml:"image"`
	Type       VendorType `yaml:"type"`
	Rating     float64    `yaml:"rating"`
	BuildingID string     `yaml:"-"`
	Items      []string   `yaml:"items"`
	Steps      []Step     `yaml:"steps"`
}

// Building groups vendors at one location.
type Building struct {
	ID        string   `yaml:"-"`
	Name      string   `yaml:"name"`
	Image     string   `yaml:"image"`
	Latitude  float64  `yaml:"latitude"`
	Longitude float64  `yaml:"longitude"`
	Rating    float64  `yaml:"rating"`
	Vendors   []Vendor `yaml:"vendors"`
}

// namespace seeds the name-based identifiers, so ids survive restarts.
var namespace = uuid.MustParse("6f1c3f0e-5b9a-4d7e-9a37-2d8c1e4b7a10")

// BuildingID derives the identifier of a building from its name.
func BuildingID(name string) string {
	return uuid.NewSHA1(namespace, []byte("building/"+name)).String()
}

// VendorID derives the identifier of a vendor from its building and name.
func VendorID(buildingName, vendorName string) string {
	return uuid.NewSHA1(namespace, []byte("vendor/"+buildingName+"/"+vendorName)).String()
}

// StepID derives the identifier of the i-th step of a vendor route.
func StepID(vendorID string, i int) string {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("step/%s/%d", vendorID, i))).String()
}

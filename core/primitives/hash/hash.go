// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package hash fingerprints values by their hashable fields. Struct fields
// tagged `hash:"ignore"` do not contribute.
package hash

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Fmt renders a hash as fixed-width hex.
func Fmt(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// Compute hashes v. Slices are order-sensitive.
func Compute(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

// MustCompute is Compute for values whose shape is known to be hashable.
func MustCompute(v any) uint64 {
	h, err := Compute(v)
	if err != nil {
		panic(fmt.Sprintf("hash: %v", err))
	}
	return h
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package sorting

import (
	"cmp"
	"slices"
)

// SortOrder represents the sort direction
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Toggle flips the direction.
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// SortArrow returns the visual indicator for sort direction
func SortArrow(order SortOrder) string {
	if order == Ascending {
		return "▲"
	}
	return "▼"
}

// SortBy sorts items by the field getField extracts. The sort is stable so
// ties keep their dataset order.
func SortBy[T any, K cmp.Ordered](items []T, order SortOrder, getField func(T) K) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := cmp.Compare(getField(a), getField(b))
		if order == Descending {
			return -c
		}
		return c
	})
}

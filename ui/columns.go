// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

// DistributeColumns adjusts column widths to fit totalWidth after accounting
// for gapCount gaps of gapWidth each. cols holds the preferred widths and
// flexIndices the columns allowed to grow or shrink. The first flexible
// column (or the last column) absorbs spare room; when too wide, the largest
// flexible column is shrunk first, then the others, never below 1.
func DistributeColumns(totalWidth, gapCount, gapWidth int, cols []int, flexIndices []int) []int {
	adjusted := make([]int, len(cols))
	copy(adjusted, cols)
	if totalWidth <= 0 || len(adjusted) == 0 {
		return adjusted
	}

	available := totalWidth - gapCount*gapWidth
	if available <= 0 {
		for i := range adjusted {
			adjusted[i] = max(adjusted[i], 1)
		}
		return adjusted
	}

	sum := 0
	for _, v := range adjusted {
		sum += v
	}

	if sum < available {
		grow := len(adjusted) - 1
		if len(flexIndices) > 0 {
			grow = flexIndices[0]
		}
		adjusted[grow] += available - sum
		return adjusted
	}

	for sum > available {
		largest := -1
		for _, idx := range flexIndices {
			if adjusted[idx] > 1 && (largest == -1 || adjusted[idx] > adjusted[largest]) {
				largest = idx
			}
		}
		if largest == -1 {
			break
		}
		adjusted[largest]--
		sum--
	}

	for i := 0; sum > available && i < len(adjusted); {
		if adjusted[i] > 1 {
			adjusted[i]--
			sum--
			continue
		}
		i++
	}

	return adjusted
}

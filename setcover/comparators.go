// SPDX-License-Identifier: MIT

package setcover

import (
	"cmp"
	"slices"
)

// Order is a three-way ranking of two complete covers: negative when a is
// better than b, positive when b is better, zero when they tie.
type Order[D comparable] func(a, b Cover[D]) int

// Compose builds a Comparator that ranks covers lexicographically by orders.
// An absent incumbent is always beaten; a candidate tying on every order is
// not an improvement, so the first cover found among equals is kept.
func Compose[D comparable](orders ...Order[D]) Comparator[D] {
	return func(candidate Cover[D], best Result[D]) bool {
		if !best.Found {
			return true
		}
		var o Order[D]
		for _, o = range orders {
			if c := o(candidate, best.Cover); c != 0 {
				return c < 0
			}
		}

		return false
	}
}

// BySize prefers covers with fewer descriptors.
func BySize[D comparable]() Order[D] {
	return func(a, b Cover[D]) int {
		return cmp.Compare(len(a), len(b))
	}
}

// ByDescriptors breaks ties by comparing the sorted descriptor lists
// element by element. It makes the winner independent of family order.
func ByDescriptors[D cmp.Ordered]() Order[D] {
	return func(a, b Cover[D]) int {
		return slices.Compare(slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b)))
	}
}

// MinCardinality selects a cover with the fewest descriptors.
func MinCardinality[D comparable]() Comparator[D] {
	return Compose(BySize[D]())
}

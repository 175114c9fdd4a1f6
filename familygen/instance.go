// SPDX-License-Identifier: MIT

package familygen

import (
	"github.com/katalvlaran/basketsplit/setcover"
)

type setcoverSubset = setcover.Subset[string, int]

// Instance is a generated set-cover input.
type Instance struct {
	// Universe lists the items 0..n-1 in ascending order.
	Universe []int

	// Subsets lists the family in descriptor-index order.
	Subsets []setcoverSubset
}

// Solver returns a setcover.Solver over the instance, branching in
// descriptor-index order.
func (in Instance) Solver() *setcover.Solver[int, string] {
	return setcover.New(in.Universe, in.Subsets)
}

// Family returns the instance as a descriptor -> items map.
func (in Instance) Family() map[string][]int {
	out := make(map[string][]int, len(in.Subsets))
	for _, s := range in.Subsets {
		out[s.Descriptor] = append([]int(nil), s.Items...)
	}

	return out
}

// universe returns the items 0..n-1.
func universe(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// SPDX-License-Identifier: MIT

package setcover

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"time"
)

// checkMask spaces out context and deadline checks (every 1024 nodes).
const checkMask = 1023

// Solver holds an immutable universe and set family. It keeps no state
// between searches and is safe for concurrent use by multiple goroutines.
type Solver[U comparable, D comparable] struct {
	universe    []U       // canonical item order, duplicates removed
	index       map[U]int // item -> position in universe
	descriptors []D       // family order
	masks       []bitset  // masks[i] = items of descriptors[i] within the universe
	position    map[D]int // descriptor -> family position
}

// New builds a Solver over universe and subsets. Duplicate universe items
// collapse onto their first occurrence; items of a subset that are not in
// the universe are ignored. Branching follows the order of subsets.
// Descriptors must be unique; this is not validated.
func New[U comparable, D comparable](universe []U, subsets []Subset[D, U]) *Solver[U, D] {
	// 1. Index the universe in first-occurrence order.
	s := &Solver[U, D]{
		universe:    make([]U, 0, len(universe)),
		index:       make(map[U]int, len(universe)),
		descriptors: make([]D, 0, len(subsets)),
		masks:       make([]bitset, 0, len(subsets)),
		position:    make(map[D]int, len(subsets)),
	}
	var u U
	for _, u = range universe {
		if _, dup := s.index[u]; dup {
			continue
		}
		s.index[u] = len(s.universe)
		s.universe = append(s.universe, u)
	}

	// 2. Project every subset onto the universe as a bitset.
	var (
		n   = len(s.universe)
		sub Subset[D, U]
	)
	for _, sub = range subsets {
		m := newBitset(n)
		for _, u = range sub.Items {
			if i, ok := s.index[u]; ok {
				m.set(i)
			}
		}
		s.position[sub.Descriptor] = len(s.descriptors)
		s.descriptors = append(s.descriptors, sub.Descriptor)
		s.masks = append(s.masks, m)
	}

	return s
}

// FromMap builds a Solver from a descriptor -> items mapping. Descriptors
// are sorted ascending so that branching order, and therefore the returned
// cover among equally good ones, does not depend on map iteration order.
func FromMap[U comparable, D cmp.Ordered](universe []U, family map[D][]U) *Solver[U, D] {
	keys := slices.Sorted(maps.Keys(family))
	subsets := make([]Subset[D, U], 0, len(keys))
	for _, d := range keys {
		subsets = append(subsets, Subset[D, U]{Descriptor: d, Items: family[d]})
	}

	return New(universe, subsets)
}

// Universe returns a copy of the deduplicated universe in canonical order.
func (s *Solver[U, D]) Universe() []U { return slices.Clone(s.universe) }

// Descriptors returns a copy of the descriptors in family order.
func (s *Solver[U, D]) Descriptors() []D { return slices.Clone(s.descriptors) }

// Uncoverable returns the universe items that no subset contains, in
// canonical order. A non-empty result means no cover exists.
func (s *Solver[U, D]) Uncoverable() []U {
	union := newBitset(len(s.universe))
	for _, m := range s.masks {
		for i := range union {
			union[i] |= m[i]
		}
	}
	if union.count() == len(s.universe) {
		return nil
	}
	var out []U
	for i, u := range s.universe {
		if !union.has(i) {
			out = append(out, u)
		}
	}

	return out
}

// IsCover reports whether c names known descriptors, each at most once,
// whose items together contain the whole universe.
func (s *Solver[U, D]) IsCover(c Cover[D]) bool {
	var (
		seen      = make(map[D]struct{}, len(c))
		remaining = fullBitset(len(s.universe))
		d         D
	)
	for _, d = range c {
		pos, ok := s.position[d]
		if !ok {
			return false
		}
		if _, dup := seen[d]; dup {
			return false
		}
		seen[d] = struct{}{}
		remaining.differenceInto(remaining, s.masks[pos])
	}

	return remaining.empty()
}

// FindBestCover returns the best complete cover under better, or a Result with
// Found == false when the universe cannot be covered. A nil better selects
// MinCardinality. The search is exhaustive and exponential in the worst case.
func (s *Solver[U, D]) FindBestCover(better Comparator[D]) Result[D] {
	// No options: no budget and a background context, so no error is possible.
	res, _ := s.Search(better)

	return res
}

// Search runs FindBestCover under the given options. When a budget or the
// context stops the exploration early, it returns the best incumbent found
// so far (Exhaustive == false) together with ErrBudgetExceeded or the
// context error.
func (s *Solver[U, D]) Search(better Comparator[D], opts ...Option) (Result[D], error) {
	// 1. Resolve options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if better == nil {
		better = MinCardinality[D]()
	}

	// 2. Honor a context that is already done.
	if err := o.Ctx.Err(); err != nil {
		return Result[D]{}, err
	}

	// 3. Prepare the engine; level 0 holds the whole universe.
	e := &searchEngine[U, D]{
		solver: s,
		better: better,
		opts:   o,
		levels: []bitset{fullBitset(len(s.universe))},
		path:   make([]int, 0, len(s.universe)),
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	// 4. Explore.
	e.backtrack(0)

	e.best.Nodes = e.nodes
	e.best.Exhaustive = e.err == nil

	return e.best, e.err
}

// searchEngine carries the state of one Search call.
type searchEngine[U comparable, D comparable] struct {
	solver *Solver[U, D]
	better Comparator[D]
	opts   Options

	// Budget
	nodes       int
	useDeadline bool
	deadline    time.Time
	err         error

	// levels[d] is the remaining-to-cover set at depth d. A child level is
	// rewritten for every sibling; a parent level is never touched by its
	// descendants.
	levels []bitset
	path   []int // family positions chosen on the current branch

	scratch Cover[D] // candidate handed to the comparator
	order   []int    // sorted copy of path

	best Result[D]
}

// level returns the scratch bitset for depth d, allocating it on first use.
func (e *searchEngine[U, D]) level(d int) bitset {
	for len(e.levels) <= d {
		e.levels = append(e.levels, newBitset(len(e.solver.universe)))
	}

	return e.levels[d]
}

// halt accounts for one node and reports whether the search must stop.
func (e *searchEngine[U, D]) halt() bool {
	if e.err != nil {
		return true
	}
	if e.opts.MaxNodes > 0 && e.nodes >= e.opts.MaxNodes {
		e.err = fmt.Errorf("setcover: node budget %d: %w", e.opts.MaxNodes, ErrBudgetExceeded)
		return true
	}
	e.nodes++
	if e.nodes&checkMask != 0 {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.err = err
		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.err = fmt.Errorf("setcover: time limit %s: %w", e.opts.TimeLimit, ErrBudgetExceeded)
		return true
	}

	return false
}

// backtrack explores all completions of the current path at depth d.
func (e *searchEngine[U, D]) backtrack(d int) {
	// 1. Budget and cancellation.
	if e.halt() {
		return
	}

	// 2. Base case: nothing left to cover, the path is a complete cover.
	remaining := e.levels[d]
	pivot := remaining.lowest()
	if pivot < 0 {
		e.offer()
		return
	}

	// 3. Branch on every subset that contains the pivot. The child set is
	// remaining \ mask, which is strictly smaller since it loses the pivot.
	child := e.level(d + 1)
	var (
		i    int
		mask bitset
	)
	for i, mask = range e.solver.masks {
		if !mask.has(pivot) {
			continue
		}
		remaining.differenceInto(child, mask)
		e.path = append(e.path, i)
		e.backtrack(d + 1)
		e.path = e.path[:len(e.path)-1]
		if e.err != nil {
			return
		}
	}
	// A pivot no subset contains leaves the loop empty: this branch cannot
	// be completed and the incumbent stays as it is.
}

// offer hands the current path to the comparator and keeps an independent
// copy when it improves on the incumbent.
func (e *searchEngine[U, D]) offer() {
	e.order = append(e.order[:0], e.path...)
	slices.Sort(e.order)
	e.scratch = e.scratch[:0]
	for _, i := range e.order {
		e.scratch = append(e.scratch, e.solver.descriptors[i])
	}
	if e.better(e.scratch, e.best) {
		e.best.Cover = append(Cover[D]{}, e.scratch...)
		e.best.Found = true
	}
}

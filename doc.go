// SPDX-License-Identifier: MIT

// Package basketsplit splits shopping baskets into the fewest delivery groups
// by solving Set Cover exactly.
//
// What is inside?
//
//	setcover/   — exact set cover by depth-first backtracking, pluggable comparators
//	familygen/  — deterministic random set families for tests and benchmarks
//	basket/     — delivery configuration, product resolution, basket splitting
//	internal/   — metrics, HTTP transport and the command tree
//	cmd/        — the basketsplit binary
//
// Quick start:
//
//	s, err := basket.NewSplitter("config.json")
//	if err != nil { ... }
//	groups, err := s.Split([]string{"Cola", "Chips", "Croissant"})
//
// or, for a generic instance:
//
//	solver := setcover.FromMap(universe, family)
//	res := solver.FindBestCover(setcover.MinCardinality[string]())
//	if res.Found { fmt.Println(res.Cover) }
//
// The search is exponential in the worst case and meant for tens of
// candidate sets; see setcover.Search for node and time budgets.
package basketsplit

// SPDX-License-Identifier: MIT

// Package setcover solves the Set Cover problem exactly by exhaustive
// depth-first backtracking, ranking complete covers with a caller-supplied
// comparator.
//
// What:
//
//   - Solver: holds an immutable universe of items and an ordered family of
//     named subsets (descriptor → items).
//   - FindBestCover(better): explores every cover reachable by pivot branching and
//     returns the best one under better, or an absent Result when the universe
//     cannot be covered at all.
//   - Search(better, opts...): the same search with an optional node budget,
//     wall-clock limit and context cancellation.
//   - Comparator helpers: Compose, BySize, ByDescriptors, MinCardinality.
//
// Why:
//
//   - Split an order into the fewest fulfilment or delivery groups.
//   - Pick the smallest set of feature flags, services or teams that together
//     own a required capability set.
//   - Provide a ground truth to validate heuristics on small instances.
//
// Algorithm:
//
//  1. If nothing remains to cover, the chosen descriptors form a complete cover;
//     it replaces the incumbent when the comparator reports an improvement.
//  2. Otherwise take the pivot: the first uncovered item in universe order.
//  3. For every subset containing the pivot (family order), recurse on
//     remaining \ subset with the subset appended to the partial cover.
//
// Subsets that miss the pivot are skipped at that level: every complete cover
// contains some subset covering the pivot, so no cover is lost. Each level
// removes at least the pivot, so depth is bounded by the universe size and a
// subset is never chosen twice on one branch.
//
// Determinism:
//
//   - The pivot is the lowest uncovered universe index; branching follows the
//     family order (FromMap sorts descriptors ascending).
//   - With a pure comparator the returned cover is identical across runs.
//
// Complexity:
//
//   - Time:   O(b^d · n/64) where b is the number of subsets covering a pivot,
//     d ≤ |universe| the recursion depth, n the universe size.
//   - Memory: O(d · n/64) for per-level bitsets plus O(d) for the path.
//
// Only use it for small families (tens of subsets). For production callers the
// Search options bound the exploration without changing the default semantics.
//
// Errors:
//
//   - ErrBudgetExceeded  the node budget or time limit was hit.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//
// "No cover exists" is never an error: it is Result.Found == false.
package setcover

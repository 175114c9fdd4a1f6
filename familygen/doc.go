// SPDX-License-Identifier: MIT

// Package familygen builds deterministic set-cover instances for tests,
// benchmarks and examples.
//
// What:
//
//   - Random(items, sets, p, opts...): every item joins every subset
//     independently with probability p (Bernoulli model), optionally patched
//     so that the instance is always coverable.
//   - Windows(items, width, opts...): sliding windows [i, i+width) over the
//     items; the minimum cover size is ceil(items/width).
//
// Determinism:
//
//   - Items are the integers 0..items-1 in ascending order.
//   - Subset descriptors come from the ID scheme (default "S0","S1",...).
//   - Random draws follow a fixed trial order (subset asc, item asc), so a
//     fixed seed always yields the same instance.
//
// Errors:
//
//   - ErrTooFewItems         a size parameter is below its minimum.
//   - ErrInvalidProbability  p is outside [0,1].
//   - ErrNeedRandSource      a stochastic generator was called without WithSeed/WithRand.
//
// Option constructors panic on meaningless inputs; generators never panic.
package familygen

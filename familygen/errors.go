// SPDX-License-Identifier: MIT
// Package: familygen
//
// errors.go — sentinel errors for the familygen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w (see genErrorf).

package familygen

import (
	"errors"
	"fmt"
)

// ErrTooFewItems indicates that a size parameter (items, sets, width) is
// smaller than the allowed minimum.
var ErrTooFewItems = errors.New("familygen: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("familygen: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator requires a
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("familygen: rng is required")

// genErrorf prefixes a sentinel with the generator name and a formatted
// detail, keeping the sentinel reachable through errors.Is.
func genErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

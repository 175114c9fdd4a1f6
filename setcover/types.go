// SPDX-License-Identifier: MIT

package setcover

import (
	"context"
	"errors"
	"time"
)

// ErrBudgetExceeded is returned by Search when the node budget or the
// time limit stopped the exploration before it was exhaustive.
var ErrBudgetExceeded = errors.New("setcover: search budget exceeded")

// Subset is one candidate set of the family: a unique descriptor and the
// universe items it contains.
type Subset[D comparable, U comparable] struct {
	Descriptor D
	Items      []U
}

// Cover is a set of descriptors listed in family order.
type Cover[D comparable] []D

// Result is the optional outcome of a search.
type Result[D comparable] struct {
	// Cover holds the best cover; meaningful only when Found is true.
	Cover Cover[D]

	// Found reports whether any complete cover was seen.
	Found bool

	// Nodes counts visited search nodes (recursive calls).
	Nodes int

	// Exhaustive is false when a budget or context cut the search short;
	// Cover is then the best incumbent, not necessarily the optimum.
	Exhaustive bool
}

// Comparator reports whether candidate is strictly better than best.
// It must return true when best.Found is false and must be a pure function
// of its arguments. The candidate slice is only valid during the call.
type Comparator[D comparable] func(candidate Cover[D], best Result[D]) bool

// Option configures Search.
type Option func(*Options)

// Options holds the hardening knobs of Search. The zero budget values mean
// "unlimited", which keeps Search equivalent to FindBestCover.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxNodes bounds the number of visited nodes; 0 disables the bound.
	MaxNodes int

	// TimeLimit bounds wall-clock time; 0 disables the bound.
	TimeLimit time.Duration
}

// DefaultOptions returns options with a background context and no budget.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxNodes:  0,
		TimeLimit: 0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes limits the number of visited nodes. Negative values panic.
func WithMaxNodes(n int) Option {
	if n < 0 {
		panic("setcover: WithMaxNodes(n<0)")
	}
	return func(o *Options) {
		o.MaxNodes = n
	}
}

// WithTimeLimit limits the wall-clock duration of a search. Negative values panic.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("setcover: WithTimeLimit(d<0)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

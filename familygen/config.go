// SPDX-License-Identifier: MIT
// Package: familygen
//
// config.go — functional options and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = PrefixIDFn("S")  ("S0","S1",...)
//   • rng       = nil               (stochastic generators require a seed)
//   • coverable = false             (Random may produce uncoverable items)

package familygen

import (
	"math/rand"
)

// Option customizes a generator by mutating a config before generation.
type Option func(*config)

// config aggregates all generator knobs. It is passed by value.
type config struct {
	idFn      IDFn       // subset index -> descriptor
	rng       *rand.Rand // nil means "no randomness"
	coverable bool       // patch Random instances so every item is covered
}

// newConfig applies opts in order over the defaults (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:      PrefixIDFn("S"),
		rng:       nil,
		coverable: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the descriptor generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("familygen: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("familygen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG so stochastic generators are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCoverable makes Random add every item that ended up in no subset to
// one subset chosen by the RNG, so the instance always admits a cover.
func WithCoverable() Option {
	return func(c *config) {
		c.coverable = true
	}
}

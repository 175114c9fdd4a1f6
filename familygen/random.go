// SPDX-License-Identifier: MIT
// Package: familygen
//
// random.go — Bernoulli set families.
//
// Contract:
//   - items ≥ 0, sets ≥ 1 (else ErrTooFewItems).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 or WithCoverable is set
//     (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order is subset asc, item asc; the coverable patch then walks
//     items asc and draws one subset per uncovered item.
//
// Complexity: O(items·sets) time and space.

package familygen

const (
	methodRandom  = "Random"
	minRandomSets = 1
	probMin       = 0.0
	probMax       = 1.0
)

// Random samples a family of sets subsets over items items, including each
// item in each subset independently with probability p.
func Random(items, sets int, p float64, opts ...Option) (Instance, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters before touching the RNG.
	if items < 0 {
		return Instance{}, genErrorf(methodRandom, ErrTooFewItems, "items=%d < 0", items)
	}
	if sets < minRandomSets {
		return Instance{}, genErrorf(methodRandom, ErrTooFewItems, "sets=%d < min=%d", sets, minRandomSets)
	}
	if p < probMin || p > probMax {
		return Instance{}, genErrorf(methodRandom, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
	}
	stochastic := p > probMin && p < probMax
	if cfg.rng == nil && (stochastic || cfg.coverable) {
		return Instance{}, genErrorf(methodRandom, ErrNeedRandSource, "seed or rand source missing")
	}

	// 2) Draw memberships in fixed trial order.
	in := Instance{Universe: universe(items)}
	member := make([][]bool, sets)
	covered := make([]bool, items)
	var s, i int
	for s = 0; s < sets; s++ {
		member[s] = make([]bool, items)
		for i = 0; i < items; i++ {
			hit := p == probMax || (stochastic && cfg.rng.Float64() < p)
			member[s][i] = hit
			covered[i] = covered[i] || hit
		}
	}

	// 3) Optionally route every orphan item to one random subset.
	if cfg.coverable {
		for i = 0; i < items; i++ {
			if !covered[i] {
				member[cfg.rng.Intn(sets)][i] = true
			}
		}
	}

	// 4) Materialize subsets with items in ascending order.
	in.Subsets = make([]setcoverSubset, sets)
	for s = 0; s < sets; s++ {
		in.Subsets[s].Descriptor = cfg.idFn(s)
		for i = 0; i < items; i++ {
			if member[s][i] {
				in.Subsets[s].Items = append(in.Subsets[s].Items, i)
			}
		}
	}

	return in, nil
}

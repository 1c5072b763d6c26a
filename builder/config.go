// SPDX-License-Identifier: MIT
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn       ("0","1","2",...)
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn   (constant DefaultEdgeWeight)

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; consulted only for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight returns the next edge weight, or 0 on unweighted graphs so the
// RNG is only consumed when weights are observed.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}

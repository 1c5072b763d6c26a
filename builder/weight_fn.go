// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/socialinherit/core"
	"github.com/katalvlaran/socialinherit/turnover"
)

// DefaultEdgeWeight is the weight emitted when no WeightFn is configured.
const DefaultEdgeWeight = core.DefaultWeight

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state and must return a finite value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value is negative or
// not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntWeightFn samples an integer uniformly from [lo, hi] inclusive.
// Panics unless 1 ≤ lo ≤ hi. A nil rng yields lo.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}
		return float64(lo + rng.IntN(hi-lo+1))
	}
}

// BetaEffortWeightFn draws round(max(Beta(shape1, shape2)·maxEffort, 1)),
// the same effort the weighted-induction rule gives a newcomer's ties.
// Panics unless all parameters are finite and > 0. A nil rng yields
// DefaultEdgeWeight.
func BetaEffortWeightFn(shape1, shape2, maxEffort float64) WeightFn {
	for _, v := range []float64{shape1, shape2, maxEffort} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("BetaEffortWeightFn: parameters must be finite and > 0, got (%g, %g, %g)",
				shape1, shape2, maxEffort))
		}
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return turnover.SampleEffort(rng, shape1, shape2, maxEffort)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithBetaEffort sets weights via BetaEffortWeightFn.
func WithBetaEffort(shape1, shape2, maxEffort float64) BuilderOption {
	return WithWeightFn(BetaEffortWeightFn(shape1, shape2, maxEffort))
}

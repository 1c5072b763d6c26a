// SPDX-License-Identifier: MIT

package turnover

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// EffortMode selects which Beta shapes WeightedInduction uses for ties to
// individuals unrelated to the sponsor.
type EffortMode int

const (
	// EffortFaithful draws stranger effort from (En1, En2), matching the
	// reference behavior in which Er1/Er2 are accepted but never read.
	EffortFaithful EffortMode = iota
	// EffortCorrected draws stranger effort from (Er1, Er2).
	EffortCorrected
)

// String implements fmt.Stringer.
func (m EffortMode) String() string {
	switch m {
	case EffortFaithful:
		return "faithful"
	case EffortCorrected:
		return "corrected"
	default:
		return fmt.Sprintf("EffortMode(%d)", int(m))
	}
}

// ParseEffortMode maps "faithful" / "corrected" (case-insensitive) to a mode.
// The empty string means EffortFaithful.
func ParseEffortMode(s string) (EffortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "faithful":
		return EffortFaithful, nil
	case "corrected":
		return EffortCorrected, nil
	default:
		return EffortFaithful, fmt.Errorf("effort mode %q: %w", s, ErrInvalidParameter)
	}
}

// SampleEffort draws round(max(Beta(shape1, shape2)·maxEffort, 1)).
// The result is an integer-valued float ≥ 1. Halves round to even.
//
// All randomness comes from src; the number of values consumed depends on
// gonum's Gamma sampler and is deterministic for a given src state.
//
// For very small shapes both Gamma draws can underflow to zero and the
// Beta ratio is NaN. The draw then resolves to 0 or 1 with
// P(1) = shape1/(shape1+shape2), the limit of Beta as the shapes vanish.
func SampleEffort(src rand.Source, shape1, shape2, maxEffort float64) float64 {
	x := distuv.Beta{Alpha: shape1, Beta: shape2, Src: src}.Rand()
	if math.IsNaN(x) {
		x = distuv.Bernoulli{P: shape1 / (shape1 + shape2), Src: src}.Rand()
	}

	return math.RoundToEven(math.Max(x*maxEffort, 1))
}

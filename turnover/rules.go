// SPDX-License-Identifier: MIT
//
// rules.go: the three turnover rules and their parameter validation.
//
// Rule is sealed: its planning method is unexported, so exactly the three
// rules declared here exist.

package turnover

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/socialinherit/core"
)

// Canonical rule names, used in logs, reports, config and the run store.
const (
	RuleInduction         = "induction"
	RuleWeightedInduction = "weighted_induction"
	RuleStyleCopying      = "style_copying"
)

// Rule decides a newcomer's ties for one round.
type Rule interface {
	// Name returns the canonical rule name.
	Name() string
	// Validate checks the parameters; errors wrap ErrInvalidParameter.
	Validate() error

	needsWeights() bool
	plan(r *round) error
}

// Induction is the unweighted social-induction rule.
type Induction struct {
	// Pn is the tie probability to each of the sponsor's partners.
	Pn float64
	// Pr is the tie probability to every other individual.
	Pr float64
	// Pb is the tie probability to the sponsor itself.
	Pb float64
}

// Name implements Rule.
func (Induction) Name() string { return RuleInduction }

// Validate implements Rule.
func (ind Induction) Validate() error {
	return firstErr(
		checkProb(RuleInduction, "Pn", ind.Pn),
		checkProb(RuleInduction, "Pr", ind.Pr),
		checkProb(RuleInduction, "Pb", ind.Pb),
	)
}

func (Induction) needsWeights() bool { return false }

func (ind Induction) plan(r *round) error {
	w := 0.0
	if r.weighted {
		w = core.DefaultWeight
	}
	for _, id := range r.candidates {
		c := r.classOf(id)
		r.trials.add(c)
		if r.rng.Float64() < pickProb(c, ind.Pb, ind.Pn, ind.Pr) {
			r.addTie(id, w, c)
		}
	}

	return nil
}

// WeightedInduction is social induction with Beta-distributed effort weights.
type WeightedInduction struct {
	Pn, Pr, Pb float64
	// En1, En2 shape the effort toward the sponsor and the sponsor's partners.
	En1, En2 float64
	// Er1, Er2 shape the effort toward everyone else in EffortCorrected mode.
	Er1, Er2 float64
	// MaxEffort scales a Beta draw in [0,1] to an effort.
	MaxEffort float64
}

// Name implements Rule.
func (WeightedInduction) Name() string { return RuleWeightedInduction }

// Validate implements Rule.
func (w WeightedInduction) Validate() error {
	return firstErr(
		checkProb(RuleWeightedInduction, "Pn", w.Pn),
		checkProb(RuleWeightedInduction, "Pr", w.Pr),
		checkProb(RuleWeightedInduction, "Pb", w.Pb),
		checkPositive(RuleWeightedInduction, "En1", w.En1),
		checkPositive(RuleWeightedInduction, "En2", w.En2),
		checkPositive(RuleWeightedInduction, "Er1", w.Er1),
		checkPositive(RuleWeightedInduction, "Er2", w.Er2),
		checkPositive(RuleWeightedInduction, "MaxEffort", w.MaxEffort),
	)
}

func (WeightedInduction) needsWeights() bool { return true }

// shapes returns the Beta parameters for a relationship class. Strangers
// use (En1, En2) in EffortFaithful mode and (Er1, Er2) in EffortCorrected.
func (w WeightedInduction) shapes(c TieClass, mode EffortMode) (float64, float64) {
	if c == TieStranger && mode == EffortCorrected {
		return w.Er1, w.Er2
	}

	return w.En1, w.En2
}

func (w WeightedInduction) plan(r *round) error {
	for _, id := range r.candidates {
		c := r.classOf(id)
		a, b := w.shapes(c, r.mode)
		// Effort is drawn even when the trial below fails.
		effort := SampleEffort(r.rng, a, b, w.MaxEffort)
		r.trials.add(c)
		if r.rng.Float64() < pickProb(c, w.Pb, w.Pn, w.Pr) {
			r.addTie(id, effort, c)
		}
	}

	return nil
}

// StyleCopying makes the newcomer imitate the sponsor's partner count and
// tie-weight distribution.
type StyleCopying struct {
	// Pb is the tie probability to the sponsor itself.
	Pb float64
}

// Name implements Rule.
func (StyleCopying) Name() string { return RuleStyleCopying }

// Validate implements Rule.
func (s StyleCopying) Validate() error {
	return checkProb(RuleStyleCopying, "Pb", s.Pb)
}

func (StyleCopying) needsWeights() bool { return true }

func (s StyleCopying) plan(r *round) error {
	partners := len(r.sponsorWeights)

	if partners > 1 {
		eligible := make([]string, 0, len(r.candidates))
		for _, id := range r.candidates {
			if id != r.sponsor {
				eligible = append(eligible, id)
			}
		}
		need := partners - 1
		if need > len(eligible) {
			return fmt.Errorf("%s: sponsor %q has %d ties, only %d eligible targets for %d: %w",
				RuleStyleCopying, r.sponsor, partners, len(eligible), need, ErrInsufficientCandidates)
		}

		picks := make([]int, need)
		sampleuv.WithoutReplacement(picks, len(eligible), r.rng)
		targets := make([]string, need)
		for i, p := range picks {
			targets[i] = eligible[p]
		}
		for _, id := range targets {
			c := r.classOf(id)
			r.trials.add(c)
			r.addTie(id, r.sponsorWeights[r.rng.IntN(partners)], c)
		}
	}

	r.trials.add(TieSponsor)
	if r.rng.Float64() < s.Pb {
		w := core.DefaultWeight
		if partners > 0 {
			w = r.sponsorWeights[r.rng.IntN(partners)]
		}
		r.addTie(r.sponsor, w, TieSponsor)
	}

	return nil
}

func pickProb(c TieClass, pb, pn, pr float64) float64 {
	switch c {
	case TieSponsor:
		return pb
	case TiePartner:
		return pn
	default:
		return pr
	}
}

func checkProb(method, name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: %s=%v not in [0,1]: %w", method, name, p, ErrInvalidParameter)
	}

	return nil
}

func checkPositive(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s: %s=%v must be finite and > 0: %w", method, name, v, ErrInvalidParameter)
	}

	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package turnover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialinherit/core"
)

// Simulator runs turnover rounds of one Rule over a caller-owned graph.
//
// A Simulator owns its random stream; it is not safe for concurrent use,
// and a graph must not be touched by anyone else while Run is in progress.
type Simulator struct {
	rule Rule
	cfg  simConfig
	// seq is the last newcomer sequence number handed to idFn; it persists
	// across Run calls so repeated runs keep producing fresh IDs.
	seq int
}

// New validates rule and returns a Simulator.
//
// Errors:
//   - ErrInvalidParameter: rule is nil or its parameters are out of range.
func New(rule Rule, opts ...Option) (*Simulator, error) {
	if rule == nil {
		return nil, fmt.Errorf("turnover: nil rule: %w", ErrInvalidParameter)
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	return &Simulator{rule: rule, cfg: newSimConfig(opts...)}, nil
}

// Rule returns the configured rule.
func (s *Simulator) Rule() Rule { return s.rule }

// Run executes iterations rounds against g, mutating it in place.
//
// Preconditions are checked before the first draw: g non-nil,
// iterations ≥ 0, and a weighted graph for WeightedInduction/StyleCopying.
// A failing round leaves g in its pre-round state and is reported as
// *RoundError; earlier rounds stay committed. ctx is checked between rounds.
//
// The returned Report covers the rounds that were committed.
func (s *Simulator) Run(ctx context.Context, g *core.Graph, iterations int) (Report, error) {
	rep := Report{Rule: s.rule.Name()}
	if g == nil {
		return rep, ErrNilGraph
	}
	if iterations < 0 {
		return rep, fmt.Errorf("turnover: iterations=%d must be ≥ 0: %w", iterations, ErrInvalidParameter)
	}
	if s.rule.needsWeights() && !g.Weighted() {
		return rep, fmt.Errorf("turnover: %s: %w", s.rule.Name(), ErrUnweightedGraph)
	}

	log := s.cfg.logger.With().Str("rule", s.rule.Name()).Logger()

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			log.Info().Int("rounds", rep.Rounds).Err(err).Msg("run aborted")
			return rep, &RoundError{Round: i, Err: err}
		}

		rr, err := s.step(g, i)
		if err != nil {
			log.Error().Int("round", i).Err(err).Msg("round failed")
			return rep, &RoundError{Round: i, Err: err}
		}

		rep.Rounds++
		rep.Trials.merge(rr.Trials)
		rep.Ties.merge(rr.Ties)
		rep.Last = rr

		log.Debug().
			Int("round", i).
			Str("removed", rr.Removed).
			Str("sponsor", rr.Sponsor).
			Str("newcomer", rr.Newcomer).
			Int("partner_number", rr.PartnerNumber).
			Int("ties", rr.Ties.Total()).
			Msg("round committed")

		if s.cfg.observer != nil {
			s.cfg.observer(rr)
		}
	}

	log.Info().
		Int("rounds", rep.Rounds).
		Int("ties", rep.Ties.Total()).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("run finished")

	return rep, nil
}

// step plans and commits a single round.
func (s *Simulator) step(g *core.Graph, idx int) (RoundReport, error) {
	r, err := planRound(g, s.cfg.rng, s.cfg.mode)
	if err != nil {
		return RoundReport{}, err
	}
	if err = s.rule.plan(r); err != nil {
		return RoundReport{}, err
	}

	seq := s.seq
	newcomer, err := nextID(g, s.cfg.idFn, &seq)
	if err != nil {
		return RoundReport{}, err
	}
	if err = r.commit(g, newcomer); err != nil {
		return RoundReport{}, err
	}
	s.seq = seq

	return r.report(idx, newcomer), nil
}

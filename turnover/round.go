// SPDX-License-Identifier: MIT
//
// round.go: planning and committing a single turnover round.
//
// Implementation:
//   - Stage 1 (plan): draw the departing individual and the sponsor, snapshot
//     the sponsor's ties that survive the departure, let the Rule decide the
//     newcomer's ties. The graph is only read.
//   - Stage 2 (commit): detach the departing vertex, append the newcomer,
//     add the planned ties. Any failure rolls the graph back to its
//     pre-round state.

package turnover

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/socialinherit/core"
)

// maxIDAttempts bounds the search for an unused newcomer ID.
const maxIDAttempts = 1 << 16

// tie is one planned newcomer edge.
type tie struct {
	to     string
	weight float64
	class  TieClass
}

// round holds everything a Rule may read or write while planning.
type round struct {
	rng      *rand.Rand
	mode     EffortMode
	weighted bool

	removed string
	sponsor string
	// candidates are the vertices that remain after the departure, in
	// position order; the sponsor is among them.
	candidates []string
	// partners is the sponsor's neighbor set after the departure.
	partners map[string]struct{}
	// sponsorWeights is the sponsor's incident-weight multiset after the
	// departure, in edge creation order. Its length is partner_number.
	sponsorWeights []float64

	ties   []tie
	trials ClassCounts
}

// planRound draws the departing individual and the sponsor and collects the
// sponsor's surviving neighborhood.
func planRound(g *core.Graph, rng *rand.Rand, mode EffortMode) (*round, error) {
	order := g.Vertices()
	n := len(order)
	if n < 2 {
		return nil, fmt.Errorf("%d vertices at round start: %w", n, ErrEmptyGraph)
	}

	pos := rng.IntN(n)
	r := &round{
		rng:        rng,
		mode:       mode,
		weighted:   g.Weighted(),
		removed:    order[pos],
		candidates: make([]string, 0, n-1),
		partners:   make(map[string]struct{}),
	}
	r.candidates = append(r.candidates, order[:pos]...)
	r.candidates = append(r.candidates, order[pos+1:]...)
	r.sponsor = r.candidates[rng.IntN(n-1)]

	edges, err := g.Neighbors(r.sponsor)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		other := e.Other(r.sponsor)
		if other == r.removed {
			continue
		}
		r.partners[other] = struct{}{}
		r.sponsorWeights = append(r.sponsorWeights, e.Weight)
	}

	return r, nil
}

// classOf reports the relationship of id to the sponsor.
func (r *round) classOf(id string) TieClass {
	if id == r.sponsor {
		return TieSponsor
	}
	if _, ok := r.partners[id]; ok {
		return TiePartner
	}

	return TieStranger
}

func (r *round) addTie(to string, weight float64, c TieClass) {
	r.ties = append(r.ties, tie{to: to, weight: weight, class: c})
}

// commit applies the plan. On failure the graph is restored and the
// returned error joins the cause with any rollback failure.
func (r *round) commit(g *core.Graph, newcomer string) error {
	rec, err := g.Detach(r.removed)
	if err != nil {
		return fmt.Errorf("detach %q: %w", r.removed, err)
	}
	if err = g.AddVertex(newcomer); err != nil {
		return r.rollback(g, rec, "", fmt.Errorf("add newcomer %q: %w", newcomer, err))
	}
	for _, t := range r.ties {
		if _, err = g.AddEdge(newcomer, t.to, t.weight); err != nil {
			return r.rollback(g, rec, newcomer, fmt.Errorf("tie %q-%q: %w", newcomer, t.to, err))
		}
	}

	return nil
}

func (r *round) rollback(g *core.Graph, rec *core.Detached, newcomer string, cause error) error {
	errs := []error{cause}
	if newcomer != "" {
		if err := g.RemoveVertex(newcomer); err != nil {
			errs = append(errs, fmt.Errorf("rollback newcomer: %w", err))
		}
	}
	if err := g.Reattach(rec); err != nil {
		errs = append(errs, fmt.Errorf("rollback %q: %w", rec.ID, err))
	}

	return errors.Join(errs...)
}

// nextID returns the first unused ID produced by idFn from *seq onward and
// advances *seq past it.
func nextID(g *core.Graph, idFn func(int) string, seq *int) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		*seq++
		id := idFn(*seq)
		if id != "" && !g.HasVertex(id) {
			return id, nil
		}
	}

	return "", fmt.Errorf("no unused newcomer ID after %d attempts: %w", maxIDAttempts, ErrInvalidParameter)
}

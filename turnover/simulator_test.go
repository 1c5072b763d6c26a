package turnover_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/socialinherit/core"
	"github.com/katalvlaran/socialinherit/turnover"
)

// SimulatorSuite exercises the three rules end to end.
type SimulatorSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SimulatorSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *SimulatorSuite) rules() []turnover.Rule {
	return []turnover.Rule{
		turnover.Induction{Pn: 0.5, Pr: 0.1, Pb: 0.8},
		turnover.WeightedInduction{Pn: 0.5, Pr: 0.1, Pb: 0.8, En1: 2, En2: 5, Er1: 1, Er2: 3, MaxEffort: 20},
		turnover.StyleCopying{Pb: 0.5},
	}
}

// TestVertexCountPreserved checks |V| is constant across every round and
// that the departed vertex leaves no edge behind.
func (s *SimulatorSuite) TestVertexCountPreserved() {
	for _, rule := range s.rules() {
		g := ringWithChords(s.T(), 12, 4, true)
		n := g.VertexCount()
		obs := func(rr turnover.RoundReport) {
			s.Require().Equal(n, g.VertexCount(), "%s round %d", rule.Name(), rr.Round)
			s.Require().False(g.HasVertex(rr.Removed))
			s.Require().True(g.HasVertex(rr.Newcomer))
			for _, e := range g.Edges() {
				s.Require().NotEqual(rr.Removed, e.From)
				s.Require().NotEqual(rr.Removed, e.To)
			}
		}

		sim, err := turnover.New(rule, turnover.WithSeed(7), turnover.WithObserver(obs))
		s.Require().NoError(err)
		report, err := sim.Run(s.ctx, g, 60)
		s.Require().NoError(err, rule.Name())
		s.Equal(60, report.Rounds)
		s.Equal(rule.Name(), report.Rule)
		s.Equal(n, g.VertexCount())
	}
}

// TestNewcomerTakesLastPosition checks the newcomer is appended at the end
// of the position order.
func (s *SimulatorSuite) TestNewcomerTakesLastPosition() {
	g := ringWithChords(s.T(), 8, 2, false)
	sim, err := turnover.New(turnover.Induction{Pn: 0.5, Pr: 0.5, Pb: 0.5}, turnover.WithSeed(3),
		turnover.WithObserver(func(rr turnover.RoundReport) {
			last, err := g.VertexAt(g.VertexCount() - 1)
			s.Require().NoError(err)
			s.Require().Equal(rr.Newcomer, last)
		}))
	s.Require().NoError(err)
	_, err = sim.Run(s.ctx, g, 20)
	s.Require().NoError(err)
}

// TestFullInduction checks Pn=Pr=Pb=1 ties the newcomer to everyone.
func (s *SimulatorSuite) TestFullInduction() {
	g := ringWithChords(s.T(), 9, 3, false)
	n := g.VertexCount()
	var last string
	sim, err := turnover.New(turnover.Induction{Pn: 1, Pr: 1, Pb: 1}, turnover.WithSeed(11),
		turnover.WithObserver(func(rr turnover.RoundReport) {
			d, err := g.Degree(rr.Newcomer)
			s.Require().NoError(err)
			s.Require().Equal(n-1, d)
			s.Require().Equal(n-1, rr.Ties.Total())
			s.Require().Equal(rr.Trials, rr.Ties)
			s.Require().Equal(1, rr.Ties.Sponsor)
			s.Require().Equal(rr.PartnerNumber, rr.Ties.Partner)
			last = rr.Newcomer
		}))
	s.Require().NoError(err)
	rep, err := sim.Run(s.ctx, g, 10)
	s.Require().NoError(err)
	s.Equal(last, rep.Last.Newcomer)
	for _, e := range newcomerEdges(s.T(), g, last) {
		s.Equal(0.0, e.Weight, "unweighted graph keeps zero weights")
	}
}

// TestNoInduction checks Pn=Pr=Pb=0 leaves every newcomer isolated.
func (s *SimulatorSuite) TestNoInduction() {
	for _, rule := range []turnover.Rule{
		turnover.Induction{},
		turnover.WeightedInduction{En1: 1, En2: 1, Er1: 1, Er2: 1, MaxEffort: 5},
	} {
		g := ringWithChords(s.T(), 10, 5, true)
		sim, err := turnover.New(rule, turnover.WithSeed(5),
			turnover.WithObserver(func(rr turnover.RoundReport) {
				d, err := g.Degree(rr.Newcomer)
				s.Require().NoError(err)
				s.Require().Zero(d)
				s.Require().Zero(rr.Ties.Total())
				s.Require().Equal(g.VertexCount()-1, rr.Trials.Total())
			}))
		s.Require().NoError(err)
		_, err = sim.Run(s.ctx, g, 15)
		s.Require().NoError(err)
	}
}

// TestInductionDefaultWeight checks unweighted induction on a weighted graph
// uses core.DefaultWeight.
func (s *SimulatorSuite) TestInductionDefaultWeight() {
	g := ringWithChords(s.T(), 6, 0, true)
	_, rep, err := turnover.Run(s.ctx, g, turnover.Induction{Pn: 1, Pr: 1, Pb: 1}, 1, turnover.WithSeed(2))
	s.Require().NoError(err)
	for _, e := range newcomerEdges(s.T(), g, rep.Last.Newcomer) {
		s.Equal(core.DefaultWeight, e.Weight)
	}
}

// TestWeightedScenario is the 10-vertex, 15-edge single-round case.
func (s *SimulatorSuite) TestWeightedScenario() {
	g := ringWithChords(s.T(), 10, 5, true)
	s.Require().Equal(15, g.EdgeCount())

	rule := turnover.WeightedInduction{Pn: 1, Pr: 1, Pb: 1, En1: 2, En2: 2, Er1: 2, Er2: 2, MaxEffort: 10}
	_, rep, err := turnover.Run(s.ctx, g, rule, 1, turnover.WithSeed(42))
	s.Require().NoError(err)

	s.Equal(10, g.VertexCount())
	d, err := g.Degree(rep.Last.Newcomer)
	s.Require().NoError(err)
	s.Equal(9, d)
	for _, e := range newcomerEdges(s.T(), g, rep.Last.Newcomer) {
		s.GreaterOrEqual(e.Weight, 1.0)
		s.LessOrEqual(e.Weight, 10.0)
		s.Equal(math.Trunc(e.Weight), e.Weight)
	}
}

// TestEffortModes checks the stranger shapes follow the selected mode.
func (s *SimulatorSuite) TestEffortModes() {
	// Only strangers tie; (En1,En2) pushes effort toward MaxEffort and
	// (Er1,Er2) toward 1.
	rule := turnover.WeightedInduction{Pn: 0, Pb: 0, Pr: 1, En1: 60, En2: 1, Er1: 1, Er2: 60, MaxEffort: 100}

	for _, tc := range []struct {
		mode turnover.EffortMode
		high bool
	}{
		{turnover.EffortFaithful, true},
		{turnover.EffortCorrected, false},
	} {
		g := ringWithChords(s.T(), 12, 0, true)
		sim, err := turnover.New(rule, turnover.WithSeed(9), turnover.WithEffortMode(tc.mode),
			turnover.WithObserver(func(rr turnover.RoundReport) {
				s.Require().Zero(rr.Ties.Sponsor)
				s.Require().Zero(rr.Ties.Partner)
				for _, e := range newcomerEdges(s.T(), g, rr.Newcomer) {
					if tc.high {
						s.Require().Greater(e.Weight, 50.0, tc.mode.String())
					} else {
						s.Require().Less(e.Weight, 50.0, tc.mode.String())
					}
				}
			}))
		s.Require().NoError(err)
		_, err = sim.Run(s.ctx, g, 5)
		s.Require().NoError(err)
	}
}

// TestWeightedTinyShapes checks near-zero Beta shapes still give integer
// efforts ≥ 1 and never abort the run.
func (s *SimulatorSuite) TestWeightedTinyShapes() {
	g := ringWithChords(s.T(), 10, 5, true)
	rule := turnover.WeightedInduction{
		Pn: 1, Pr: 1, Pb: 1,
		En1: 0.001, En2: 0.001, Er1: 0.001, Er2: 0.001,
		MaxEffort: 10,
	}
	sim, err := turnover.New(rule, turnover.WithSeed(3),
		turnover.WithObserver(func(rr turnover.RoundReport) {
			for _, e := range newcomerEdges(s.T(), g, rr.Newcomer) {
				s.Require().False(math.IsNaN(e.Weight))
				s.Require().GreaterOrEqual(e.Weight, 1.0)
				s.Require().Equal(math.Trunc(e.Weight), e.Weight)
			}
		}))
	s.Require().NoError(err)
	rep, err := sim.Run(s.ctx, g, 50)
	s.Require().NoError(err)
	s.Equal(50, rep.Rounds)
}

// TestWeightedDrawOrder checks every candidate consumes its effort draw
// whether or not its trial succeeds: with the same seed, runs that tie
// nobody and runs that tie everybody pick the same departures and sponsors.
func (s *SimulatorSuite) TestWeightedDrawOrder() {
	picks := func(p float64) [][2]string {
		g := ringWithChords(s.T(), 10, 5, true)
		rule := turnover.WeightedInduction{Pn: p, Pr: p, Pb: p, En1: 2, En2: 2, Er1: 2, Er2: 2, MaxEffort: 10}
		var out [][2]string
		sim, err := turnover.New(rule, turnover.WithSeed(17),
			turnover.WithObserver(func(rr turnover.RoundReport) {
				out = append(out, [2]string{rr.Removed, rr.Sponsor})
			}))
		s.Require().NoError(err)
		_, err = sim.Run(s.ctx, g, 6)
		s.Require().NoError(err)

		return out
	}

	none, all := picks(0), picks(1)
	s.Require().Len(none, 6)
	s.Equal(none, all)
}

// TestStyleCopyingExactCount checks the newcomer copies partner_number−1 on K5.
func (s *SimulatorSuite) TestStyleCopyingExactCount() {
	g := complete(s.T(), 5, 3)
	_, rep, err := turnover.Run(s.ctx, g, turnover.StyleCopying{Pb: 0}, 1, turnover.WithSeed(1))
	s.Require().NoError(err)

	// Every survivor of K5 keeps degree 3 after the departure.
	s.Equal(3, rep.Last.PartnerNumber)
	d, err := g.Degree(rep.Last.Newcomer)
	s.Require().NoError(err)
	s.Equal(2, d)
	s.False(g.HasEdge(rep.Last.Newcomer, rep.Last.Sponsor))
	for _, e := range newcomerEdges(s.T(), g, rep.Last.Newcomer) {
		s.Equal(3.0, e.Weight)
	}
}

// TestStyleCopyingDegreeLaw checks deg(newcomer) = max(d−1, 0) + sponsor tie
// on every round, and that weights only come from the sponsor's multiset.
func (s *SimulatorSuite) TestStyleCopyingDegreeLaw() {
	for _, pb := range []float64{0, 1} {
		g := ringWithChords(s.T(), 14, 7, true)
		allowed := map[float64]bool{1: true, 2: true, 3: true, 4: true}
		sim, err := turnover.New(turnover.StyleCopying{Pb: pb}, turnover.WithSeed(21),
			turnover.WithObserver(func(rr turnover.RoundReport) {
				want := 0
				if rr.PartnerNumber > 1 {
					want = rr.PartnerNumber - 1
				}
				if pb == 1 {
					want++
				}
				d, err := g.Degree(rr.Newcomer)
				s.Require().NoError(err)
				s.Require().Equal(want, d, "pb=%v round %d", pb, rr.Round)
				s.Require().Equal(pb == 1, g.HasEdge(rr.Newcomer, rr.Sponsor))
				for _, e := range newcomerEdges(s.T(), g, rr.Newcomer) {
					s.Require().True(allowed[e.Weight], "weight %v", e.Weight)
				}
			}))
		s.Require().NoError(err)
		_, err = sim.Run(s.ctx, g, 40)
		s.Require().NoError(err)
	}
}

// TestStyleCopyingIsolatedSponsor checks the fallback weight of 1.
func (s *SimulatorSuite) TestStyleCopyingIsolatedSponsor() {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 2; i++ {
		s.Require().NoError(g.AddVertex(vid(i)))
	}
	_, rep, err := turnover.Run(s.ctx, g, turnover.StyleCopying{Pb: 1}, 1)
	s.Require().NoError(err)
	s.Zero(rep.Last.PartnerNumber)
	w, err := g.EdgeWeight(rep.Last.Newcomer, rep.Last.Sponsor)
	s.Require().NoError(err)
	s.Equal(1.0, w)
}

// TestZeroIterations checks the graph is untouched by a zero-round run.
func (s *SimulatorSuite) TestZeroIterations() {
	for _, rule := range s.rules() {
		g := ringWithChords(s.T(), 10, 5, true)
		before := snap(g)
		sim, err := turnover.New(rule)
		s.Require().NoError(err)
		report, err := sim.Run(s.ctx, g, 0)
		s.Require().NoError(err)
		s.Zero(report.Rounds)
		if diff := cmp.Diff(before, snap(g)); diff != "" {
			s.Failf("graph changed", "%s (-before +after):\n%s", rule.Name(), diff)
		}
	}
}

// TestSeedDeterminism checks equal seeds give identical runs.
func (s *SimulatorSuite) TestSeedDeterminism() {
	for _, rule := range s.rules() {
		a := ringWithChords(s.T(), 16, 8, true)
		b := a.Clone()
		_, ra, err := turnover.Run(s.ctx, a, rule, 30, turnover.WithSeed(1234))
		s.Require().NoError(err)
		_, rb, err := turnover.Run(s.ctx, b, rule, 30, turnover.WithSeed(1234))
		s.Require().NoError(err)
		s.Equal(ra, rb)
		if diff := cmp.Diff(snap(a), snap(b)); diff != "" {
			s.Failf("runs diverged", "%s:\n%s", rule.Name(), diff)
		}
	}
}

// TestEmptyGraph checks runs on fewer than two vertices fail before mutating.
func (s *SimulatorSuite) TestEmptyGraph() {
	for _, n := range []int{0, 1} {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			s.Require().NoError(g.AddVertex(vid(i)))
		}
		before := snap(g)
		_, _, err := turnover.Run(s.ctx, g, turnover.Induction{Pn: 1, Pr: 1, Pb: 1}, 3)
		s.Require().ErrorIs(err, turnover.ErrEmptyGraph)
		s.Contains(err.Error(), "fewer than two individuals")

		var re *turnover.RoundError
		s.Require().ErrorAs(err, &re)
		s.Equal(0, re.Round)
		s.Empty(cmp.Diff(before, snap(g)))
	}
}

// TestInsufficientCandidates uses a multigraph where the sponsor has more
// parallel ties than there are distinct targets; the round must not commit.
func (s *SimulatorSuite) TestInsufficientCandidates() {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	ids := []string{"a", "b", "c"}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			for k := 0; k < 3; k++ {
				_, err := g.AddEdge(ids[i], ids[j], float64(k+1))
				s.Require().NoError(err)
			}
		}
	}
	before := snap(g)

	_, rep, err := turnover.Run(s.ctx, g, turnover.StyleCopying{Pb: 1}, 5, turnover.WithSeed(8))
	s.Require().ErrorIs(err, turnover.ErrInsufficientCandidates)
	var re *turnover.RoundError
	s.Require().ErrorAs(err, &re)
	s.Equal(0, re.Round)
	s.Zero(rep.Rounds)
	if diff := cmp.Diff(before, snap(g)); diff != "" {
		s.Failf("partial commit", "(-before +after):\n%s", diff)
	}
}

// TestUnweightedGraphRejected checks weighted rules refuse unweighted graphs.
func (s *SimulatorSuite) TestUnweightedGraphRejected() {
	for _, rule := range s.rules()[1:] {
		g := ringWithChords(s.T(), 5, 0, false)
		before := snap(g)
		_, _, err := turnover.Run(s.ctx, g, rule, 1)
		s.Require().ErrorIs(err, turnover.ErrUnweightedGraph)
		s.Empty(cmp.Diff(before, snap(g)))
	}
}

// TestPreconditions covers nil graph and negative iterations.
func (s *SimulatorSuite) TestPreconditions() {
	sim, err := turnover.New(turnover.Induction{})
	s.Require().NoError(err)

	_, err = sim.Run(s.ctx, nil, 1)
	s.ErrorIs(err, turnover.ErrNilGraph)

	g := ringWithChords(s.T(), 4, 0, false)
	_, err = sim.Run(s.ctx, g, -1)
	s.ErrorIs(err, turnover.ErrInvalidParameter)
}

// TestContextCancel checks cancellation is honored between rounds.
func (s *SimulatorSuite) TestContextCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	g := ringWithChords(s.T(), 8, 2, false)
	sim, err := turnover.New(turnover.Induction{Pn: 0.5, Pr: 0.5, Pb: 0.5},
		turnover.WithObserver(func(rr turnover.RoundReport) {
			if rr.Round == 2 {
				cancel()
			}
		}))
	s.Require().NoError(err)

	rep, err := sim.Run(ctx, g, 100)
	s.Require().ErrorIs(err, context.Canceled)
	var re *turnover.RoundError
	s.Require().ErrorAs(err, &re)
	s.Equal(3, re.Round)
	s.Equal(3, rep.Rounds)
	s.Equal(8, g.VertexCount())
}

// TestIDScheme checks custom newcomer names and collision skipping.
func (s *SimulatorSuite) TestIDScheme() {
	g := ringWithChords(s.T(), 4, 0, false)
	// "v1" exists, so the first attempt is skipped.
	scheme := func(seq int) string {
		if seq == 1 {
			return "v1"
		}
		return fmt.Sprintf("new-%d", seq)
	}
	var got []string
	sim, err := turnover.New(turnover.Induction{}, turnover.WithIDScheme(scheme),
		turnover.WithObserver(func(rr turnover.RoundReport) { got = append(got, rr.Newcomer) }))
	s.Require().NoError(err)
	_, err = sim.Run(s.ctx, g, 3)
	s.Require().NoError(err)
	s.Equal([]string{"new-2", "new-3", "new-4"}, got)
}

func TestSimulatorSuite(t *testing.T) {
	suite.Run(t, new(SimulatorSuite))
}

func TestNewValidation(t *testing.T) {
	valid := turnover.WeightedInduction{Pn: 0.5, Pr: 0.5, Pb: 0.5, En1: 1, En2: 1, Er1: 1, Er2: 1, MaxEffort: 10}
	withPn := valid
	withPn.Pn = 1.5
	withEr := valid
	withEr.Er2 = 0
	withMax := valid
	withMax.MaxEffort = math.Inf(1)

	cases := []struct {
		name string
		rule turnover.Rule
		ok   bool
	}{
		{"nil rule", nil, false},
		{"induction ok", turnover.Induction{Pn: 0, Pr: 1, Pb: 0.3}, true},
		{"induction negative", turnover.Induction{Pn: -0.1}, false},
		{"induction NaN", turnover.Induction{Pb: math.NaN()}, false},
		{"weighted ok", valid, true},
		{"weighted Pn", withPn, false},
		{"weighted Er2", withEr, false},
		{"weighted MaxEffort", withMax, false},
		{"style ok", turnover.StyleCopying{Pb: 1}, true},
		{"style bad", turnover.StyleCopying{Pb: 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sim, err := turnover.New(tc.rule)
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, sim)
				return
			}
			require.ErrorIs(t, err, turnover.ErrInvalidParameter)
			require.Nil(t, sim)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { turnover.WithRand(nil) })
	require.Panics(t, func() { turnover.WithObserver(nil) })
	require.Panics(t, func() { turnover.WithIDScheme(nil) })
	require.Panics(t, func() { turnover.WithEffortMode(turnover.EffortMode(9)) })
}

func TestRoundErrorUnwrap(t *testing.T) {
	err := error(&turnover.RoundError{Round: 4, Err: turnover.ErrEmptyGraph})
	require.True(t, errors.Is(err, turnover.ErrEmptyGraph))
	require.Contains(t, err.Error(), "round 4")
}

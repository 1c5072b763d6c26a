// SPDX-License-Identifier: MIT

package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/socialinherit/core"
	"github.com/katalvlaran/socialinherit/turnover"
)

// louvainResolution is the standard modularity resolution γ = 1.
const louvainResolution = 1.0

// Summary is a structural snapshot of a network.
type Summary struct {
	Vertices int `json:"vertices" yaml:"vertices"`
	Edges    int `json:"edges" yaml:"edges"`

	MeanDegree float64 `json:"mean_degree" yaml:"mean_degree"`
	SDDegree   float64 `json:"sd_degree" yaml:"sd_degree"`
	MaxDegree  int     `json:"max_degree" yaml:"max_degree"`
	Isolated   int     `json:"isolated" yaml:"isolated"`

	Transitivity        float64 `json:"transitivity" yaml:"transitivity"`
	MeanLocalClustering float64 `json:"mean_local_clustering" yaml:"mean_local_clustering"`

	Components       int `json:"components" yaml:"components"`
	LargestComponent int `json:"largest_component" yaml:"largest_component"`

	// MeanDistance averages hop distances over connected ordered pairs;
	// Diameter is the longest of them.
	MeanDistance float64 `json:"mean_distance" yaml:"mean_distance"`
	Diameter     int     `json:"diameter" yaml:"diameter"`

	Communities int     `json:"communities" yaml:"communities"`
	Modularity  float64 `json:"modularity" yaml:"modularity"`

	MeanWeight float64 `json:"mean_weight" yaml:"mean_weight"`
	SDWeight   float64 `json:"sd_weight" yaml:"sd_weight"`
}

// Option customizes Summarize.
type Option func(*options)

type options struct {
	seed int64
}

// WithSeed seeds the Louvain community search (default 1).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// Summarize computes the Summary of g. g is only read.
func Summarize(g *core.Graph, opts ...Option) (Summary, error) {
	o := options{seed: 1}
	for _, opt := range opts {
		opt(&o)
	}

	gg, m, err := ToGonum(g)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Vertices: len(m.IDs), Edges: g.EdgeCount()}
	if s.Vertices == 0 {
		return s, nil
	}

	degs := make([]float64, s.Vertices)
	for i, id := range m.IDs {
		d, err := g.Degree(id)
		if err != nil {
			return Summary{}, err
		}
		degs[i] = float64(d)
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}
	s.MeanDegree, s.SDDegree = meanSD(degs)

	s.Transitivity, s.MeanLocalClustering = clustering(gg)

	comps := topo.ConnectedComponents(gg)
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.LargestComponent {
			s.LargestComponent = len(c)
		}
	}

	if s.MeanDistance, s.Diameter, err = distances(g, m.IDs); err != nil {
		return Summary{}, err
	}

	total := float64(s.Edges)
	if g.Weighted() && s.Edges > 0 {
		ws := make([]float64, 0, s.Edges)
		for _, e := range g.Edges() {
			ws = append(ws, e.Weight)
		}
		s.MeanWeight, s.SDWeight = meanSD(ws)
		total = floats.Sum(ws)
	}

	s.Communities, s.Modularity = modularity(gg, o.seed, s.Vertices, total)

	return s, nil
}

// modularity runs Louvain on gg and scores the resulting partition.
// Graphs without positive total tie weight are reported as singletons with
// Q = 0, since Q is undefined there.
func modularity(gg graph.Undirected, seed int64, n int, totalWeight float64) (int, float64) {
	if !(totalWeight > 0) {
		return n, 0
	}
	reduced := community.Modularize(gg, louvainResolution, turnover.NewRand(seed))
	comms := reduced.Communities()
	q := community.Q(gg, comms, louvainResolution)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		q = 0
	}

	return len(comms), q
}

// meanSD is stat.MeanStdDev with the sample deviation of <2 values set to 0.
func meanSD(xs []float64) (float64, float64) {
	mean, sd := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		sd = 0
	}

	return mean, sd
}

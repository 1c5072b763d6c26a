// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/socialinherit/core"
)

// ErrNilGraph is returned when a nil graph is passed in.
var ErrNilGraph = errors.New("analysis: graph is nil")

// Mapping translates between gonum node IDs and vertex IDs.
// Node i is the vertex at dense position i.
type Mapping struct {
	IDs   []string
	Nodes map[string]int64
}

// ToGonum converts g into a gonum weighted undirected graph. Unweighted
// graphs get weight 1 per edge; parallel edges are merged with their
// weights summed.
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, Mapping, error) {
	if g == nil {
		return nil, Mapping{}, ErrNilGraph
	}

	ids := g.Vertices()
	m := Mapping{IDs: ids, Nodes: make(map[string]int64, len(ids))}
	gg := simple.NewWeightedUndirectedGraph(0, 0)
	for i, id := range ids {
		gg.AddNode(simple.Node(int64(i)))
		m.Nodes[id] = int64(i)
	}

	weighted := g.Weighted()
	for _, e := range g.Edges() {
		w := 1.0
		if weighted {
			w = e.Weight
		}
		u, v := m.Nodes[e.From], m.Nodes[e.To]
		if prev := gg.WeightedEdge(u, v); prev != nil {
			w += prev.Weight()
		}
		gg.SetWeightedEdge(gg.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
	}

	return gg, m, nil
}

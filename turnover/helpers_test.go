package turnover_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialinherit/core"
)

// edgeRow is a comparable view of a core.Edge.
type edgeRow struct {
	ID, From, To string
	Weight       float64
}

// snapshot captures everything observable about a graph.
type snapshot struct {
	Weighted bool
	Vertices []string
	Edges    []edgeRow
}

func snap(g *core.Graph) snapshot {
	s := snapshot{Weighted: g.Weighted(), Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, edgeRow{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}

	return s
}

func vid(i int) string { return fmt.Sprintf("v%d", i) }

// ringWithChords builds v0..v(n-1) joined in a ring plus chords (i, i+n/2)
// for i < chords. Weights cycle through 1..4 on weighted graphs.
func ringWithChords(t *testing.T, n, chords int, weighted bool) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(vid(i)))
	}
	k := 0
	add := func(u, v int) {
		w := 0.0
		if weighted {
			w = float64(k%4 + 1)
		}
		k++
		_, err := g.AddEdge(vid(u), vid(v), w)
		require.NoError(t, err)
	}
	for i := 0; i < n; i++ {
		add(i, (i+1)%n)
	}
	for i := 0; i < chords; i++ {
		add(i, i+n/2)
	}

	return g
}

// complete builds K_n with every weight equal to w.
func complete(t *testing.T, n int, w float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(vid(i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, err := g.AddEdge(vid(i), vid(j), w)
			require.NoError(t, err)
		}
	}

	return g
}

// newcomerEdges returns the edges incident to the newcomer.
func newcomerEdges(t *testing.T, g *core.Graph, id string) []*core.Edge {
	t.Helper()
	es, err := g.Neighbors(id)
	require.NoError(t, err)

	return es
}

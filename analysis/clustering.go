// SPDX-License-Identifier: MIT

package analysis

import "gonum.org/v1/gonum/graph"

// clustering returns transitivity (closed / connected triples) and the mean
// local clustering coefficient over all vertices.
//
// Complexity: O(Σ k_v²) edge lookups.
func clustering(g graph.Undirected) (transitivity, meanLocal float64) {
	var (
		closed, triples float64
		localSum        float64
		n               int
	)

	nodes := g.Nodes()
	for nodes.Next() {
		n++
		v := nodes.Node().ID()
		nbrs := graph.NodesOf(g.From(v))
		k := len(nbrs)
		if k < 2 {
			continue
		}

		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdgeBetween(nbrs[i].ID(), nbrs[j].ID()) {
					links++
				}
			}
		}
		pairs := float64(k*(k-1)) / 2
		closed += float64(links)
		triples += pairs
		localSum += float64(links) / pairs
	}

	if triples > 0 {
		transitivity = closed / triples
	}
	if n > 0 {
		meanLocal = localSum / float64(n)
	}

	return transitivity, meanLocal
}

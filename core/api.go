// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for configuration flags and a Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time summary of a Graph's flags and catalog sizes.
type GraphStats struct {
	Weighted    bool
	AllowsMulti bool
	VertexCount int
	EdgeCount   int
	// WeightSum is the total weight over all edges (0 on unweighted graphs).
	WeightSum float64
}

// Weighted reports whether non-zero weights are permitted.
// Flags are immutable after construction, so no lock is taken.
func (g *Graph) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		VertexCount: len(g.order),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		s.WeightSum += e.Weight
	}

	return s
}

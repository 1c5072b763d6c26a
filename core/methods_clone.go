// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID and positions, so a clone evolves exactly
//     like the original under the same sequence of mutations.

package core

// Clone returns a deep copy of the Graph: flags, positions, edges and adjacency.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		nextEdgeID: g.nextEdgeID,
		order:      make([]string, len(g.order)),
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	copy(clone.order, g.order)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, pos: v.pos}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}
	for _, e := range g.edges {
		ne := *e
		clone.linkEdgeLocked(&ne)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// nextEdgeID restarts, so edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	g.nextEdgeID = 0
}

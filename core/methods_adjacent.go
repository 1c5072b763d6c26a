// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, IncidentWeights).
// Determinism:
//   - Neighbors() and IncidentWeights() follow edge creation order.
//   - NeighborIDs() follows dense position order.

package core

import "sort"

// Neighbors returns all edges incident to id in creation order.
// Parallel edges appear once each. Returned edges are live; treat them as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return g.incidentLocked(id), nil
}

// incidentLocked collects the edges incident to id sorted by creation order.
func (g *Graph) incidentLocked(id string) []*Edge {
	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sortBySeq(out)

	return out
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, ordered
// by their dense position.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(k log k), Space O(k), k = number of distinct neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for other := range g.adjacency[id] {
		ids = append(ids, other)
	}
	sort.Slice(ids, func(i, j int) bool { return g.vertices[ids[i]].pos < g.vertices[ids[j]].pos })

	return ids, nil
}

// IncidentWeights returns the weights of all edges incident to id as a
// multiset in edge creation order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) IncidentWeights(id string) ([]float64, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(edges))
	for i, e := range edges {
		out[i] = e.Weight
	}

	return out, nil
}

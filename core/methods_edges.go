// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       per-pair weight access, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge u-v with the given weight.
// Missing endpoints are appended as new vertices (in u, v order).
//
// Steps:
//  1. Validate IDs, loop, weight.
//  2. Lock; ensure endpoints exist.
//  3. Reject a parallel edge unless multi-edges are enabled.
//  4. Generate the edge ID, store the edge and mirror it in adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if u == v {
		return "", ErrLoopNotAllowed
	}
	if err := g.checkWeight(weight); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	if !g.allowMulti && len(g.adjacency[u][v]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{ID: formatEdgeID(g.nextEdgeID), From: u, To: v, Weight: weight, seq: g.nextEdgeID}
	g.linkEdgeLocked(e)

	return e.ID, nil
}

// checkWeight enforces the weight policy. Weighted flag is immutable, so no lock is needed.
func (g *Graph) checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("core: weight %v: %w", w, ErrBadWeight)
	}
	if !g.weighted && w != 0 {
		return fmt.Errorf("core: weight %v on unweighted graph: %w", w, ErrBadWeight)
	}

	return nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkEdgeLocked(e)

	return nil
}

// HasEdge reports whether at least one edge u-v exists (either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// GetEdge returns the Edge with the given ID. Treat it as read-only.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeWeight returns the weight of the oldest edge u-v.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
func (g *Graph) EdgeWeight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.firstEdgeLocked(u, v)
	if e == nil {
		return 0, ErrEdgeNotFound
	}

	return e.Weight, nil
}

// SetEdgeWeight overwrites the weight of the oldest edge u-v.
//
// Errors:
//   - ErrBadWeight per the graph's weight policy.
//   - ErrEdgeNotFound if no such edge exists.
func (g *Graph) SetEdgeWeight(u, v string, w float64) error {
	if err := g.checkWeight(w); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e := g.firstEdgeLocked(u, v)
	if e == nil {
		return ErrEdgeNotFound
	}
	e.Weight = w

	return nil
}

// firstEdgeLocked returns the lowest-sequence edge between u and v, or nil.
func (g *Graph) firstEdgeLocked(u, v string) *Edge {
	var best *Edge
	for eid := range g.adjacency[u][v] {
		e := g.edges[eid]
		if best == nil || e.seq < best.seq {
			best = e
		}
	}

	return best
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// linkEdgeLocked stores e and mirrors it in adjacency. Caller holds the write lock
// and guarantees both endpoints exist.
func (g *Graph) linkEdgeLocked(e *Edge) {
	g.edges[e.ID] = e
	ensureBucket(g, e.From, e.To)[e.ID] = struct{}{}
	ensureBucket(g, e.To, e.From)[e.ID] = struct{}{}
}

// unlinkEdgeLocked removes e from the catalog and both adjacency buckets,
// pruning buckets that become empty.
func (g *Graph) unlinkEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	dropFromBucket(g, e.From, e.To, e.ID)
	dropFromBucket(g, e.To, e.From, e.ID)
}

func ensureBucket(g *Graph, u, v string) map[string]struct{} {
	row, ok := g.adjacency[u]
	if !ok {
		row = make(map[string]map[string]struct{})
		g.adjacency[u] = row
	}
	bucket, ok := row[v]
	if !ok {
		bucket = make(map[string]struct{})
		row[v] = bucket
	}

	return bucket
}

func dropFromBucket(g *Graph, u, v, eid string) {
	row := g.adjacency[u]
	if row == nil {
		return
	}
	delete(row[v], eid)
	if len(row[v]) == 0 {
		delete(row, v)
	}
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// formatEdgeID renders "e" + decimal without fmt allocations.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

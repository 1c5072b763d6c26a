// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, dense positions and degree.
//
// Determinism:
//   - Vertices() returns IDs in position order (insertion order minus removals).
//   - Removing position i shifts positions i+1.. down by one.
package core

import "fmt"

// AddVertex appends a vertex at the last position if it is missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, return early if the vertex exists.
//   - Stage 3: Register the vertex at position len(order) and bootstrap its adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked appends id if absent. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, pos: len(g.order)}
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges, then closes the gap
// in the position order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(V + deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	_, err := g.Detach(id)

	return err
}

// Detached is the restore record produced by Detach. It captures the
// vertex's former position and its incident edges, IDs included.
type Detached struct {
	ID    string
	Pos   int
	Edges []Edge
}

// Detach removes a vertex exactly like RemoveVertex and returns what is
// needed to undo the removal with Reattach.
//
// Implementation:
//   - Stage 1: Validate id and presence.
//   - Stage 2: Copy every incident edge (creation order) into the record and delete it.
//   - Stage 3: Cut the vertex out of order and renumber the tail.
//
// Complexity:
//   - Time O(V + deg(v) log deg(v)), Space O(deg(v)).
func (g *Graph) Detach(id string) (*Detached, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	rec := &Detached{ID: id, Pos: v.pos}
	for _, e := range g.incidentLocked(id) {
		rec.Edges = append(rec.Edges, *e)
		g.unlinkEdgeLocked(e)
	}

	delete(g.adjacency, id)
	delete(g.vertices, id)
	g.order = append(g.order[:v.pos], g.order[v.pos+1:]...)
	g.renumberLocked(v.pos)

	return rec, nil
}

// Reattach restores a vertex removed by Detach at its former position, with
// its former edges and edge IDs. Positions at or after d.Pos shift up by one.
//
// Errors:
//   - ErrVertexExists: the ID has been reused since Detach.
//   - ErrIndexOutOfRange: d.Pos is beyond the current vertex count.
//   - ErrVertexNotFound: an edge's other endpoint has since been removed.
//
// The graph is unchanged when an error is returned.
func (g *Graph) Reattach(d *Detached) error {
	if d == nil || d.ID == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[d.ID]; exists {
		return ErrVertexExists
	}
	if d.Pos < 0 || d.Pos > len(g.order) {
		return fmt.Errorf("core: reattach %q at %d of %d: %w", d.ID, d.Pos, len(g.order), ErrIndexOutOfRange)
	}
	for i := range d.Edges {
		other := d.Edges[i].Other(d.ID)
		if _, ok := g.vertices[other]; !ok {
			return fmt.Errorf("core: reattach %q: endpoint %q: %w", d.ID, other, ErrVertexNotFound)
		}
		if _, taken := g.edges[d.Edges[i].ID]; taken {
			return fmt.Errorf("core: reattach %q: edge %s: %w", d.ID, d.Edges[i].ID, ErrMultiEdgeNotAllowed)
		}
	}

	g.order = append(g.order, "")
	copy(g.order[d.Pos+1:], g.order[d.Pos:])
	g.order[d.Pos] = d.ID
	g.vertices[d.ID] = &Vertex{ID: d.ID, pos: d.Pos}
	g.adjacency[d.ID] = make(map[string]map[string]struct{})
	g.renumberLocked(d.Pos + 1)

	for i := range d.Edges {
		e := d.Edges[i]
		g.linkEdgeLocked(&e)
	}

	return nil
}

// renumberLocked rewrites cached positions from index start onward.
func (g *Graph) renumberLocked(start int) {
	for i := start; i < len(g.order); i++ {
		g.vertices[g.order[i]].pos = i
	}
}

// Vertices returns all vertex IDs in dense position order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// VertexAt returns the ID at dense position i (0-based).
//
// Errors:
//   - ErrIndexOutOfRange: i < 0 or i >= VertexCount().
//
// Complexity: O(1).
func (g *Graph) VertexAt(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.order) {
		return "", fmt.Errorf("core: position %d of %d: %w", i, len(g.order), ErrIndexOutOfRange)
	}

	return g.order[i], nil
}

// IndexOf returns the current dense position of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return -1, ErrVertexNotFound
	}

	return v.pos, nil
}

// Degree returns the number of edges incident to id. Parallel edges each
// count once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for _, bucket := range g.adjacency[id] {
		deg += len(bucket)
	}

	return deg, nil
}

// SPDX-License-Identifier: MIT

// Package core provides the mutable, undirected social graph that turnover
// simulations operate on.
//
// The Graph G = (V,E) keeps two views of its vertices at once:
//
//   - Stable identity: every vertex has a string ID that never changes while
//     the vertex lives.
//   - Dense position: vertices are kept in insertion order, and position i
//     (0-based) is what a position-indexed algorithm sees. Removing a vertex
//     shifts every later vertex down by one; adding a vertex appends it at
//     the last position.
//
// Translate between the two with VertexAt(i) and IndexOf(id). Vertices()
// always enumerates in position order.
//
// Configuration Options (GraphOption):
//
//	- WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	- WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Self-loops are never allowed (ErrLoopNotAllowed): an individual has no tie
// with itself.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1), appends at last position
//	HasVertex(id string) bool                  // O(1)
//	RemoveVertex(id string) error              // O(V+E)
//	Detach(id string) (*Detached, error)       // RemoveVertex that keeps a restore record
//	Reattach(d *Detached) error                // inverse of Detach
//
//	// Positions
//	VertexAt(i int) (string, error)            // O(1)
//	IndexOf(id string) (int, error)            // O(1)
//	Vertices() []string                        // O(V), position order
//
//	// Edge lifecycle
//	AddEdge(u, v string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error            // O(1)
//	HasEdge(u, v string) bool                  // O(1)
//	EdgeWeight(u, v string) (float64, error)   // O(1)
//	SetEdgeWeight(u, v string, w float64) error
//
//	// Neighborhood
//	Neighbors(id string) ([]*Edge, error)      // incident edges, creation order
//	NeighborIDs(id string) ([]string, error)   // unique, position order
//	IncidentWeights(id string) ([]float64, error)
//	Degree(id string) (int, error)
//
//	// Maintenance
//	Clone() *Graph, Clear(), Stats() GraphStats
//
// Concurrency: a single sync.RWMutex guards all catalogs. Reads may run
// concurrently with each other; the graph is expected to have one writer.
package core

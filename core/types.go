// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and NewGraph.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrVertexExists        - Reattach of an ID that is already present.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or NaN/Inf.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrIndexOutOfRange     - position outside [0, VertexCount()).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates a vertex could not be restored because its ID is taken.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight the graph cannot store.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrIndexOutOfRange indicates a dense position outside the current vertex range.
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")
)

// DefaultWeight is the weight given to a tie on a weighted graph when the
// caller has no better value.
const DefaultWeight float64 = 1

// Vertex represents an individual in the graph.
//
// ID is stable for the vertex's lifetime. pos is its current dense position
// and is rewritten whenever an earlier vertex leaves.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	pos int
}

// Edge represents an undirected tie between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs in the order given to AddEdge.
	From string
	To   string

	// Weight is the tie strength ("effort"); zero on unweighted graphs.
	Weight float64

	seq uint64 // creation sequence, used for deterministic ordering
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory undirected social graph.
//
// order holds vertex IDs by dense position; vertices maps ID → *Vertex with
// the same position cached in Vertex.pos. adjacency mirrors every edge:
// adjacency[u][v][edgeID] and adjacency[v][u][edgeID].
type Graph struct {
	mu sync.RWMutex

	weighted   bool
	allowMulti bool

	nextEdgeID uint64
	order      []string
	vertices   map[string]*Vertex
	edges      map[string]*Edge
	adjacency  map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is unweighted and rejects multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SPDX-License-Identifier: MIT

// Package graphio reads and writes network snapshots as YAML.
//
// A snapshot lists vertices in dense position order and edges in creation
// order, so a graph read back has the same positions and the same edge
// enumeration as the one written. Edge IDs are reassigned on read.
//
//	weighted: true
//	multigraph: false
//	vertices: [a, b, c]
//	edges:
//	  - {from: a, to: b, weight: 3}
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialinherit/core"
)

// ErrNilGraph is returned when Write is handed a nil graph.
var ErrNilGraph = errors.New("graphio: graph is nil")

// ErrBadSnapshot indicates a document that does not describe a valid graph.
var ErrBadSnapshot = errors.New("graphio: invalid snapshot")

// Snapshot is the on-disk form of a core.Graph.
type Snapshot struct {
	Weighted   bool         `yaml:"weighted" json:"weighted"`
	Multigraph bool         `yaml:"multigraph,omitempty" json:"multigraph,omitempty"`
	Vertices   []string     `yaml:"vertices" json:"vertices"`
	Edges      []EdgeRecord `yaml:"edges" json:"edges"`
}

// EdgeRecord is one edge of a Snapshot.
type EdgeRecord struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// FromGraph captures g.
func FromGraph(g *core.Graph) (Snapshot, error) {
	if g == nil {
		return Snapshot{}, ErrNilGraph
	}
	s := Snapshot{
		Weighted:   g.Weighted(),
		Multigraph: g.Multigraph(),
		Vertices:   g.Vertices(),
	}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, EdgeRecord{From: e.From, To: e.To, Weight: e.Weight})
	}

	return s, nil
}

// Graph rebuilds a core.Graph from s.
func (s Snapshot) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if s.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if s.Multigraph {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)

	for i, id := range s.Vertices {
		if g.HasVertex(id) {
			return nil, fmt.Errorf("graphio: vertex %d %q repeated: %w", i, id, ErrBadSnapshot)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphio: vertex %d %q: %w: %w", i, id, ErrBadSnapshot, err)
		}
	}
	for i, e := range s.Edges {
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			return nil, fmt.Errorf("graphio: edge %d %q-%q: undeclared endpoint: %w", i, e.From, e.To, ErrBadSnapshot)
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge %d %q-%q: %w: %w", i, e.From, e.To, ErrBadSnapshot, err)
		}
	}

	return g, nil
}

// Write encodes g as YAML to w.
func Write(w io.Writer, g *core.Graph) error {
	s, err := FromGraph(g)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(s); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Read decodes a YAML snapshot from r.
func Read(r io.Reader) (*core.Graph, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w: %w", ErrBadSnapshot, err)
	}

	return s.Graph()
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ReadFile reads a snapshot from path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// SPDX-License-Identifier: MIT
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialinherit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Topology kinds accepted by FromKind.
const (
	KindRandomSparse  = "random_sparse"
	KindRandomRegular = "random_regular"
	KindComplete      = "complete"
	KindCycle         = "cycle"
	KindStar          = "star"
)

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor; otherwise whatever the
//     constructor returns (branch with errors.Is on the builder sentinels).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// FromKind returns the constructor named by kind. n is the vertex count;
// p is the edge probability for random_sparse and the degree for
// random_regular (truncated); other kinds ignore p.
func FromKind(kind string, n int, p float64) (Constructor, error) {
	switch kind {
	case KindRandomSparse:
		return RandomSparse(n, p), nil
	case KindRandomRegular:
		return RandomRegular(n, int(p)), nil
	case KindComplete:
		return Complete(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindStar:
		return Star(n), nil
	default:
		return nil, fmt.Errorf("FromKind: unknown kind %q: %w", kind, ErrConstructFailed)
	}
}

// addVertices inserts cfg.idFn(0..n-1) in index order and returns the IDs.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge emits one weighted-or-not edge with method context on failure.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

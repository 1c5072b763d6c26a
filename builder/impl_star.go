// SPDX-License-Identifier: MIT
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub has the fixed ID CenterVertexID and is added first; leaves
//     use cfg.idFn(1..n-1).
//   - Spokes are emitted in increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialinherit/core"
)

// CenterVertexID is the hub of a Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := addEdge(methodStar, g, cfg, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

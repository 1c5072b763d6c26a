// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős-Rényi G(n, p). Each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Vertices are added via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, else 0.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - Trial order is i asc, j asc (j>i); for a pair the Bernoulli draw
//     precedes its weight draw.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/socialinherit/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bernoulli draws only when the outcome is uncertain, so p∈{0,1} works
// without an RNG and consumes nothing.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

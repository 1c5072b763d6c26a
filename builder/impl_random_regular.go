// SPDX-License-Identifier: MIT
//
// impl_random_regular.go: implementation of RandomRegular(n, d) constructor.
//
// Model: stub matching (pairing). Each vertex contributes d stubs; stubs are
// shuffled and paired consecutively. A pairing producing a self-loop or a
// duplicate pair is rejected and reshuffled, up to a fixed number of attempts.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Multigraphs are rejected (ErrUnsupportedGraphMode): the result is simple.
//   - Exhausted attempts ⇒ ErrConstructFailed (vertices are already added).
//
// Complexity:
//   - Per attempt O(n·d) time; O(n·d) space for stubs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialinherit/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor that builds a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Multigraph() {
			return fmt.Errorf("%s: multigraph mode: %w", methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids, err := addVertices(methodRandomRegular, g, cfg, n)
		if err != nil {
			return err
		}
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}

		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err = addEdge(methodRandomRegular, g, cfg, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}

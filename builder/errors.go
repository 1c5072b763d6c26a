// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with "%s: ...: %w" (method first).
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX..., XxxWeightFn).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource →
//   ErrUnsupportedGraphMode → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates a size or degree parameter below the allowed
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor cannot honor the graph's
// mode flags (e.g. RandomRegular on a multigraph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates the builder exhausted its attempts, received
// a nil constructor, or was asked for an unknown topology kind.
var ErrConstructFailed = errors.New("builder: construction failed")

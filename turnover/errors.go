// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors and the per-round error wrapper.
//
// Error policy:
//   • Parameter and graph-shape problems are reported before any mutation.
//   • Round-time failures are wrapped in *RoundError carrying the 0-based
//     round index; errors.Is/As see through it to the sentinel.
//   • Nothing is retried: every failure is a parameter or programming error.

package turnover

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a probability outside [0,1], a negative
// iteration count, a non-positive Beta shape or effort ceiling, or a nil rule.
var ErrInvalidParameter = errors.New("turnover: invalid parameter")

// ErrNilGraph indicates Run was handed a nil graph.
var ErrNilGraph = errors.New("turnover: graph is nil")

// ErrUnweightedGraph indicates a weighted rule was run on a graph built
// without core.WithWeighted().
var ErrUnweightedGraph = errors.New("turnover: rule requires a weighted graph")

// ErrEmptyGraph indicates a round could not remove an individual and still
// leave a sponsor.
var ErrEmptyGraph = errors.New("turnover: fewer than two individuals")

// ErrInsufficientCandidates indicates the style rule could not draw
// partner_number−1 distinct targets.
var ErrInsufficientCandidates = errors.New("turnover: insufficient candidates")

// RoundError reports the round in which a run stopped.
type RoundError struct {
	// Round is the 0-based index of the failing round.
	Round int
	Err   error
}

// Error implements error.
func (e *RoundError) Error() string {
	return fmt.Sprintf("turnover: round %d: %v", e.Round, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *RoundError) Unwrap() error { return e.Err }

// SPDX-License-Identifier: MIT

package turnover

import (
	"context"

	"github.com/katalvlaran/socialinherit/core"
)

// Run is the one-shot form of New(rule, opts...).Run(ctx, g, iterations).
// It returns g itself, mutated, so calls can be chained.
func Run(ctx context.Context, g *core.Graph, rule Rule, iterations int, opts ...Option) (*core.Graph, Report, error) {
	sim, err := New(rule, opts...)
	if err != nil {
		return g, Report{}, err
	}
	rep, err := sim.Run(ctx, g, iterations)

	return g, rep, err
}

// SPDX-License-Identifier: MIT
//
// options.go: functional options for Simulator.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil RNG, nil hook,
//     unknown mode); Run itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package turnover

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/rs/zerolog"
)

// Option customizes a Simulator.
type Option func(*simConfig)

type simConfig struct {
	rng      *rand.Rand
	logger   zerolog.Logger
	observer func(RoundReport)
	mode     EffortMode
	idFn     func(seq int) string
}

func newSimConfig(opts ...Option) simConfig {
	cfg := simConfig{
		logger: zerolog.Nop(),
		mode:   EffortFaithful,
		idFn:   defaultNewcomerID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewRand(defaultSeed)
	}

	return cfg
}

// defaultNewcomerID names newcomers "n1", "n2", ...
func defaultNewcomerID(seq int) string {
	return "n" + strconv.Itoa(seq)
}

// WithRand provides the random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("turnover: WithRand(nil)")
	}
	return func(c *simConfig) { c.rng = r }
}

// WithSeed seeds a fresh stream via NewRand.
func WithSeed(seed int64) Option {
	return func(c *simConfig) { c.rng = NewRand(seed) }
}

// WithLogger sets the zerolog logger. Rounds are logged at debug level,
// run completion and failures at info/error.
func WithLogger(l zerolog.Logger) Option {
	return func(c *simConfig) { c.logger = l }
}

// WithObserver registers a hook called after every committed round.
// Panics on nil.
func WithObserver(fn func(RoundReport)) Option {
	if fn == nil {
		panic("turnover: WithObserver(nil)")
	}
	return func(c *simConfig) { c.observer = fn }
}

// WithEffortMode selects faithful or corrected stranger effort for
// WeightedInduction. Panics on an unknown mode.
func WithEffortMode(m EffortMode) Option {
	if m != EffortFaithful && m != EffortCorrected {
		panic(fmt.Sprintf("turnover: WithEffortMode(%d)", int(m)))
	}
	return func(c *simConfig) { c.mode = m }
}

// WithIDScheme sets the newcomer naming function; seq starts at 1 and grows
// by one per attempt, skipping IDs already present. Panics on nil.
func WithIDScheme(fn func(seq int) string) Option {
	if fn == nil {
		panic("turnover: WithIDScheme(nil)")
	}
	return func(c *simConfig) { c.idFn = fn }
}

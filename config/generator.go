// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/socialinherit/builder"
	"github.com/katalvlaran/socialinherit/core"
)

// Edge weight laws for generated networks.
const (
	WeightsConstant = "constant"
	WeightsUniform  = "uniform"
	WeightsBeta     = "beta"
)

// Generator describes an initial network to build.
type Generator struct {
	Kind     string
	N        int
	P        float64
	Seed     int64
	Weighted bool
	// Weights is one of WeightsConstant, WeightsUniform or WeightsBeta.
	Weights   string
	Weight    float64
	WeightMin int
	WeightMax int
	BetaA     float64
	BetaB     float64
	MaxEffort float64
	IDScheme  string
}

// Generator returns the generator.* settings.
func (c *Config) Generator() Generator {
	return Generator{
		Kind:      c.v.GetString("generator.kind"),
		N:         c.v.GetInt("generator.n"),
		P:         c.v.GetFloat64("generator.p"),
		Seed:      c.v.GetInt64("generator.seed"),
		Weighted:  c.v.GetBool("generator.weighted"),
		Weights:   c.v.GetString("generator.weights"),
		Weight:    c.v.GetFloat64("generator.weight"),
		WeightMin: c.v.GetInt("generator.weight_min"),
		WeightMax: c.v.GetInt("generator.weight_max"),
		BetaA:     c.v.GetFloat64("generator.beta_a"),
		BetaB:     c.v.GetFloat64("generator.beta_b"),
		MaxEffort: c.v.GetFloat64("generator.max_effort"),
		IDScheme:  c.v.GetString("generator.id_scheme"),
	}
}

func (g Generator) validate() error {
	if _, err := builder.FromKind(g.Kind, g.N, g.P); err != nil {
		return fmt.Errorf("config: generator.kind: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := builder.ParseIDScheme(g.IDScheme); err != nil {
		return fmt.Errorf("config: generator.id_scheme: %w: %w", ErrInvalidConfig, err)
	}
	if !g.Weighted {
		return nil
	}
	switch g.Weights {
	case WeightsConstant:
		if g.Weight < 0 || math.IsNaN(g.Weight) || math.IsInf(g.Weight, 0) {
			return fmt.Errorf("config: generator.weight=%g must be ≥ 0: %w", g.Weight, ErrInvalidConfig)
		}
	case WeightsUniform:
		if g.WeightMin < 1 || g.WeightMax < g.WeightMin {
			return fmt.Errorf("config: generator.weight_min/max=%d/%d need 1 ≤ min ≤ max: %w",
				g.WeightMin, g.WeightMax, ErrInvalidConfig)
		}
	case WeightsBeta:
		if g.BetaA <= 0 || g.BetaB <= 0 || g.MaxEffort <= 0 {
			return fmt.Errorf("config: generator.beta_a/beta_b/max_effort must be > 0: %w", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("config: unknown generator.weights %q: %w", g.Weights, ErrInvalidConfig)
	}

	return nil
}

// Build constructs the described network.
func (g Generator) Build() (*core.Graph, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	cons, _ := builder.FromKind(g.Kind, g.N, g.P)
	idFn, _ := builder.ParseIDScheme(g.IDScheme)

	var gopts []core.GraphOption
	bopts := []builder.BuilderOption{builder.WithSeed(g.Seed), builder.WithIDScheme(idFn)}
	if g.Weighted {
		gopts = append(gopts, core.WithWeighted())
		switch g.Weights {
		case WeightsConstant:
			bopts = append(bopts, builder.WithConstantWeight(g.Weight))
		case WeightsUniform:
			bopts = append(bopts, builder.WithWeightFn(builder.UniformIntWeightFn(g.WeightMin, g.WeightMax)))
		case WeightsBeta:
			bopts = append(bopts, builder.WithBetaEffort(g.BetaA, g.BetaB, g.MaxEffort))
		}
	}

	return builder.BuildGraph(gopts, bopts, cons)
}

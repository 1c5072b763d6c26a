package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialinherit/config"
	"github.com/katalvlaran/socialinherit/turnover"
)

func TestDefaults(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Validate())

	assert.Equal(t, turnover.RuleInduction, c.RuleName())
	assert.Equal(t, 100, c.Iterations())
	assert.Equal(t, int64(1), c.Seed())
	assert.Equal(t, "info", c.LogLevel())
	assert.Empty(t, c.StorePath())

	mode, err := c.EffortMode()
	require.NoError(t, err)
	assert.Equal(t, turnover.EffortFaithful, mode)

	rule, err := c.Rule()
	require.NoError(t, err)
	assert.Equal(t, turnover.Induction{Pn: 0.5, Pr: 0.01, Pb: 1}, rule)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	doc := `
simulation:
  rule: style_copying
  iterations: 5
  effort_mode: corrected
style:
  pb: 0.25
generator:
  kind: cycle
  n: 8
  weights: constant
  weight: 3
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c := config.New()
	require.NoError(t, c.LoadFromFile(path))
	require.NoError(t, c.Validate())

	rule, err := c.Rule()
	require.NoError(t, err)
	assert.Equal(t, turnover.StyleCopying{Pb: 0.25}, rule)
	assert.Equal(t, 5, c.Iterations())
	mode, err := c.EffortMode()
	require.NoError(t, err)
	assert.Equal(t, turnover.EffortCorrected, mode)

	g, err := c.Generator().Build()
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, 3.0, e.Weight)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	c := config.New()
	require.Error(t, c.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SOCIALINHERIT_SIMULATION_RULE", turnover.RuleWeightedInduction)
	t.Setenv("SOCIALINHERIT_WEIGHTED_INDUCTION_MAX_EFFORT", "25")

	c := config.New()
	rule, err := c.Rule()
	require.NoError(t, err)
	wi, ok := rule.(turnover.WeightedInduction)
	require.True(t, ok)
	assert.Equal(t, 25.0, wi.MaxEffort)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]struct {
		key   string
		value interface{}
	}{
		"unknown rule":        {"simulation.rule", "mimicry"},
		"probability":         {"induction.pn", 1.5},
		"negative iterations": {"simulation.iterations", -1},
		"effort mode":         {"simulation.effort_mode", "sloppy"},
		"log level":           {"logging.level", "loud"},
		"generator kind":      {"generator.kind", "lattice"},
		"id scheme":           {"generator.id_scheme", "roman"},
		"weights law":         {"generator.weights", "pareto"},
		"uniform range":       {"generator.weight_min", 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.New()
			c.Set(tc.key, tc.value)
			if tc.key == "generator.weight_min" {
				c.Set("generator.weights", config.WeightsUniform)
			}
			require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestGeneratorBuildIsSeeded(t *testing.T) {
	c := config.New()
	c.Set("generator.n", 20)
	c.Set("generator.p", 0.3)
	c.Set("generator.seed", 9)

	a, err := c.Generator().Build()
	require.NoError(t, err)
	b, err := c.Generator().Build()
	require.NoError(t, err)
	require.Equal(t, a.Vertices(), b.Vertices())
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
		assert.Equal(t, ea[i].Weight, eb[i].Weight)
	}
}

func TestGeneratorUnweighted(t *testing.T) {
	c := config.New()
	c.Set("generator.kind", "complete")
	c.Set("generator.n", 4)
	c.Set("generator.weighted", false)

	g, err := c.Generator().Build()
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestNewLoggerLevel(t *testing.T) {
	c := config.New()
	c.Set("logging.level", "warn")

	var buf bytes.Buffer
	log := c.NewLogger(&buf)
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestCreateLoggerFallsBackToInfo(t *testing.T) {
	c := config.New()
	assert.Equal(t, zerolog.InfoLevel, c.CreateLogger().GetLevel())

	c.Set("logging.level", "nonsense")
	assert.Equal(t, zerolog.InfoLevel, c.CreateLogger().GetLevel())

	c.Set("logging.level", "debug")
	assert.Equal(t, zerolog.DebugLevel, c.CreateLogger().GetLevel())
}

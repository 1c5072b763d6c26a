// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"testing"

	"github.com/katalvlaran/socialinherit/turnover"
)

// TestDefaultsAndOverrides verifies defaults and last-wins option order.
func TestDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if cfg.rng != nil {
		t.Errorf("default rng must be nil")
	}
	if w := cfg.weight(true); w != DefaultEdgeWeight {
		t.Errorf("default weight: expected %g, got %g", DefaultEdgeWeight, w)
	}
	if w := cfg.weight(false); w != 0 {
		t.Errorf("unweighted weight: expected 0, got %g", w)
	}

	cfg = newBuilderConfig(WithSymbNumb("a"), WithIDScheme(ExcelColumnIDFn))
	if got := cfg.idFn(26); got != "AA" {
		t.Errorf("last-wins idFn: expected \"AA\", got %q", got)
	}

	cfg = newBuilderConfig(WithConstantWeight(4))
	if w := cfg.weight(true); w != 4 {
		t.Errorf("WithConstantWeight: expected 4, got %g", w)
	}
}

// TestSeedMatchesTurnoverStream checks WithSeed uses turnover's seeding.
func TestSeedMatchesTurnoverStream(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(5)).rng
	b := turnover.NewRand(5)
	for i := 0; i < 10; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("draw %d differs", i)
		}
	}

	shared := turnover.NewRand(5)
	if newBuilderConfig(WithRand(shared)).rng != shared {
		t.Errorf("WithRand must keep the given stream")
	}
}

// TestOptionPanics checks nil arguments are rejected early.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

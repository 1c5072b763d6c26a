package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/socialinherit/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn on valid inputs and panics on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"AlphanumericIDFn_z", builder.AlphanumericIDFn, 35, "z", false},
		{"AlphanumericIDFn_wrap", builder.AlphanumericIDFn, 36, "10", false},
		{"AlphanumericIDFn_negative", builder.AlphanumericIDFn, -1, "", true},
		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_AB", builder.ExcelColumnIDFn, 27, "AB", false},
		{"ExcelColumnIDFn_negative", builder.ExcelColumnIDFn, -3, "", true},
		{"SymbolNumberIDFn_v7", builder.SymbolNumberIDFn("v"), 7, "v7", false},
		{"SymbolNumberIDFn_negative", builder.SymbolNumberIDFn("v"), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q, want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}

// TestParseIDScheme covers configuration names.
func TestParseIDScheme(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]string{
		"":             "12",
		"decimal":      "12",
		"alphanumeric": "c",
		"excel":        "M",
		"prefix:ind":   "ind12",
	} {
		fn, err := builder.ParseIDScheme(name)
		if err != nil {
			t.Fatalf("ParseIDScheme(%q): %v", name, err)
		}
		if got := fn(12); got != want {
			t.Errorf("ParseIDScheme(%q)(12) = %q, want %q", name, got, want)
		}
	}

	for _, bad := range []string{"roman", "prefix:"} {
		if _, err := builder.ParseIDScheme(bad); !errors.Is(err, builder.ErrConstructFailed) {
			t.Errorf("ParseIDScheme(%q): got %v", bad, err)
		}
	}
}

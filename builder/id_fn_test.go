// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/hexroute/builder"
)

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
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_over", builder.SymbolIDFn, 26, "", true},
		{"SymbolNumber", builder.SymbolNumberIDFn("v"), 12, "v12", false},
		{"SymbolNumber_neg", builder.SymbolNumberIDFn("v"), -1, "", true},
		{"Padded", builder.PaddedIDFn("v", 2), 7, "v07", false},
		{"Padded_wide", builder.PaddedIDFn("v", 2), 123, "v123", false},
		{"Padded_neg", builder.PaddedIDFn("v", 2), -1, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tc.shouldPanic && r == nil {
					t.Errorf("%s: expected panic, but none occurred", tc.name)
				}
				if !tc.shouldPanic && r != nil {
					t.Errorf("%s: unexpected panic: %v", tc.name, r)
				}
			}()
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}

// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn ("0","1","2",...)
//   • rng     = nil         (no randomness unless seeded)
//   • rollFn  = nil         (vertices produce nothing)
//   • spacing = 1.0         (unit distance between neighbouring vertices)

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/hexroute/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn

	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand

	// Per-vertex roll tables for Path/Grid/HexBoard; nil means empty tables.
	rollFn RollFn

	// Scale applied to every rendering position.
	spacing float64
}

const defaultSpacing = 1.0

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rollsFor resolves the roll table of vertex idx; nil rollFn yields nil.
func (c builderConfig) rollsFor(idx int, id string) core.RollTable {
	if c.rollFn == nil {
		return nil
	}
	return c.rollFn(idx, id)
}

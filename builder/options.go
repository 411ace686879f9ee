// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/hexroute/core"
)

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// RollFn assigns the roll table of the vertex at index idx with the given ID.
type RollFn func(idx int, id string) core.RollTable

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a PCG-backed *rand.Rand from seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^pcgStream))
	}
}

// pcgStream decorrelates the two PCG words when only one seed is given.
const pcgStream = 0x9e3779b97f4a7c15

// WithRollTables sets per-vertex roll tables for Path, Grid and HexBoard.
// CatanBoard ignores it. Panics on nil.
func WithRollTables(fn RollFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRollTables(nil)")
	}
	return func(c *builderConfig) {
		c.rollFn = fn
	}
}

// WithSpacing scales every vertex position by s. Panics unless s is finite and > 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

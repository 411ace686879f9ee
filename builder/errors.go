// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: ...").
//   • Option constructors (WithX) panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, radius)
// is below the minimum accepted by the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor (CatanBoard) ran
// without an RNG; set one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not complete, such
// as a nil constructor or an invalid roll table from WithRollTables.
var ErrConstructFailed = errors.New("builder: construction failed")

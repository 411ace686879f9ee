// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-route algorithm on board graphs.
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty and present on the board).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//	– Cost:        edge cost function; default UniformCost.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil board was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// on the provided board.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that the cost function returned a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that no predecessor chain links source to target.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Unreachable is the distance reported for vertices that were never reached.
const Unreachable = int64(math.MaxInt64)

// CostFunc returns the non-negative cost of stepping from u into its neighbor v.
// It must be deterministic.
type CostFunc func(u, v string) int64

// UniformCost charges one per hop.
func UniformCost(string, string) int64 { return 1 }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present on the board).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Cost        – edge cost; nil means UniformCost.
type Options struct {
	Source      string   // The ID of the source vertex
	ReturnPath  bool     // Whether to return the predecessor map
	MaxDistance int64    // Maximum distance to explore
	Cost        CostFunc // Edge cost function
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance would exceed it stay Unreachable. route.FindRoute uses
// it for its cost cap. Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithCost installs the edge cost function. A nil fn keeps UniformCost.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (no distance limit).
//   - Cost:        UniformCost.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		Cost:        UniformCost,
	}
}

// SPDX-License-Identifier: MIT

// Package dfs defines types and options for simple-path enumeration:
// cancellation, depth and work caps, pruning and streaming.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil core.Board is passed to SimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrEndVertexNotFound indicates that the end vertex ID does not exist.
	ErrEndVertexNotFound = errors.New("dfs: end vertex not found")

	// ErrSearchExhausted indicates that a path or expansion cap stopped the
	// search before it was complete.
	ErrSearchExhausted = errors.New("dfs: search exhausted")
)

// Option configures optional behavior of SimplePaths.
type Option func(*Options)

// Options holds the configurable parameters of a simple-path search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, is the longest path in edges. 0 means no limit.
	MaxDepth int

	// MaxPaths, if > 0, caps the number of complete paths.
	MaxPaths int

	// MaxExpansions, if > 0, caps the number of vertices appended to the
	// walked path, end vertex included.
	MaxExpansions int

	// Prune, if non-nil, is asked before next is appended to path.
	// Returning true abandons that branch. path must not be retained.
	Prune func(path []string, next string) bool

	// OnPath, if non-nil, receives each complete path (a fresh copy) instead
	// of it being collected in the result. An error aborts the search.
	OnPath func(path []string) error

	// Prefix lists vertices walked before start.
	Prefix []string
}

// DefaultOptions returns Options with a background context and no caps.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits paths to d edges. Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("dfs: WithMaxDepth(%d): negative depth", d))
	}
	return func(o *Options) { o.MaxDepth = d }
}

// WithMaxPaths caps the number of complete paths. Panics if n < 0.
func WithMaxPaths(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dfs: WithMaxPaths(%d): negative cap", n))
	}
	return func(o *Options) { o.MaxPaths = n }
}

// WithMaxExpansions caps the number of expansions. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dfs: WithMaxExpansions(%d): negative cap", n))
	}
	return func(o *Options) { o.MaxExpansions = n }
}

// WithPrune installs a branch pruning predicate.
func WithPrune(fn func(path []string, next string) bool) Option {
	return func(o *Options) { o.Prune = fn }
}

// WithOnPath streams complete paths to fn.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *Options) { o.OnPath = fn }
}

// WithPrefix marks ids as already walked before start.
func WithPrefix(ids ...string) Option {
	return func(o *Options) { o.Prefix = append([]string(nil), ids...) }
}

// PathsResult collects the outcome of SimplePaths.
type PathsResult struct {
	// Paths holds every complete path in discovery order.
	// Empty when OnPath was supplied.
	Paths [][]string

	// Found counts complete paths, streamed or collected.
	Found int

	// Expansions counts vertices appended to the walked path.
	Expansions int

	// Truncated reports that MaxDepth cut at least one branch.
	Truncated bool
}

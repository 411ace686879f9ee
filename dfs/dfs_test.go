// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/dfs"
)

// buildBoard creates an undirected board from edge pairs.
func buildBoard(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		for _, id := range e {
			if !g.HasVertex(id) {
				require.NoError(t, g.AddVertex(core.Vertex{ID: id}))
			}
		}
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// diamond is A–B, A–C, B–C, B–D, C–D.
func diamond(t *testing.T) *core.Graph {
	return buildBoard(t,
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
	)
}

// buildComplete creates the complete graph on n vertices K0..K{n-1}.
func buildComplete(t *testing.T, n int) *core.Graph {
	t.Helper()
	var edges [][2]string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]string{fmt.Sprintf("K%d", i), fmt.Sprintf("K%d", j)})
		}
	}

	return buildBoard(t, edges...)
}

func TestSimplePaths_Validation(t *testing.T) {
	g := diamond(t)

	_, err := dfs.SimplePaths(nil, "A", "D")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.SimplePaths(g, "X", "D")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.SimplePaths(g, "A", "X")
	assert.ErrorIs(t, err, dfs.ErrEndVertexNotFound)
}

func TestSimplePaths_DiscoveryOrder(t *testing.T) {
	res, err := dfs.SimplePaths(diamond(t), "A", "D")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "D"},
		{"A", "C", "B", "D"},
		{"A", "C", "D"},
	}, res.Paths)
	assert.Equal(t, 4, res.Found)
	assert.Equal(t, 8, res.Expansions)
	assert.False(t, res.Truncated)
}

func TestSimplePaths_StartIsEnd(t *testing.T) {
	res, err := dfs.SimplePaths(diamond(t), "B", "B")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B"}}, res.Paths)
}

func TestSimplePaths_Disconnected(t *testing.T) {
	g := buildBoard(t, [2]string{"A", "B"}, [2]string{"C", "D"})
	res, err := dfs.SimplePaths(g, "A", "D")
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestSimplePaths_CompleteGraphCounts(t *testing.T) {
	// Between two vertices of K_n there are sum_{j=0}^{n-2} (n-2)!/(n-2-j)! simple paths.
	for n, want := range map[int]int{2: 1, 3: 2, 4: 5, 5: 16, 6: 65} {
		res, err := dfs.SimplePaths(buildComplete(t, n), "K0", fmt.Sprintf("K%d", n-1))
		require.NoError(t, err)
		assert.Equal(t, want, res.Found, "K%d", n)

		seen := make(map[string]bool)
		for _, p := range res.Paths {
			key := fmt.Sprint(p)
			assert.False(t, seen[key], "duplicate path %v", p)
			seen[key] = true

			onPath := make(map[string]bool)
			for _, id := range p {
				assert.False(t, onPath[id], "repeated vertex in %v", p)
				onPath[id] = true
			}
		}
	}
}

func TestSimplePaths_MaxDepth(t *testing.T) {
	res, err := dfs.SimplePaths(diamond(t), "A", "D", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, res.Paths)
	assert.True(t, res.Truncated)
}

func TestSimplePaths_Caps(t *testing.T) {
	g := diamond(t)

	_, err := dfs.SimplePaths(g, "A", "D", dfs.WithMaxPaths(3))
	assert.ErrorIs(t, err, dfs.ErrSearchExhausted)
	_, err = dfs.SimplePaths(g, "A", "D", dfs.WithMaxPaths(4))
	assert.NoError(t, err)

	_, err = dfs.SimplePaths(g, "A", "D", dfs.WithMaxExpansions(7))
	assert.ErrorIs(t, err, dfs.ErrSearchExhausted)
	_, err = dfs.SimplePaths(g, "A", "D", dfs.WithMaxExpansions(8))
	assert.NoError(t, err)
}

func TestSimplePaths_Prune(t *testing.T) {
	res, err := dfs.SimplePaths(diamond(t), "A", "D", dfs.WithPrune(func(_ []string, next string) bool {
		return next == "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}}, res.Paths)
}

func TestSimplePaths_OnPath(t *testing.T) {
	var got [][]string
	res, err := dfs.SimplePaths(diamond(t), "A", "D", dfs.WithOnPath(func(p []string) error {
		got = append(got, p)
		return nil
	}))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Equal(t, 4, res.Found)
	assert.Len(t, got, 4)

	stop := errors.New("stop")
	_, err = dfs.SimplePaths(diamond(t), "A", "D", dfs.WithOnPath(func([]string) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestSimplePaths_Prefix(t *testing.T) {
	res, err := dfs.SimplePaths(diamond(t), "B", "D", dfs.WithPrefix("A"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D"}, {"A", "B", "D"}}, res.Paths)
}

func TestSimplePaths_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.SimplePaths(diamond(t), "A", "D", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions_PanicOnNegative(t *testing.T) {
	assert.Panics(t, func() { dfs.WithMaxDepth(-1) })
	assert.Panics(t, func() { dfs.WithMaxPaths(-1) })
	assert.Panics(t, func() { dfs.WithMaxExpansions(-1) })
}

func BenchmarkSimplePaths_K7(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 7; i++ {
		_ = g.AddVertex(core.Vertex{ID: fmt.Sprintf("K%d", i)})
	}
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			_ = g.AddEdge(fmt.Sprintf("K%d", i), fmt.Sprintf("K%d", j))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.SimplePaths(g, "K0", "K6")
	}
}

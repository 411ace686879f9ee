// SPDX-License-Identifier: MIT

package route_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/dfs"
	"github.com/katalvlaran/hexroute/route"
	"github.com/katalvlaran/hexroute/settle"
)

var rich = []core.Resource{core.Wood, core.Brick, core.Sheep, core.Wheat, core.Ore}

// pathBoard builds v0–v1–v2–v3:
// v0 {8:[wood]}, v1 {6:[brick,wheat]}, v2 {6:[wood]}, v3 {8:[sheep]}.
func pathBoard(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(core.Vertex{ID: "v0", Rolls: core.RollTable{8: {core.Wood}}}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "v1", Rolls: core.RollTable{6: {core.Brick, core.Wheat}}}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "v2", Rolls: core.RollTable{6: {core.Wood}}}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "v3", Rolls: core.RollTable{8: {core.Sheep}}}))
	require.NoError(t, g.AddEdge("v0", "v1"))
	require.NoError(t, g.AddEdge("v1", "v2"))
	require.NoError(t, g.AddEdge("v2", "v3"))

	return g
}

// gridBoard builds a 3×3 lattice g00..g22 with one or two resources per vertex.
func gridBoard(t *testing.T) *core.Graph {
	t.Helper()
	totals := []int{2, 3, 4, 5, 6, 8, 9, 10, 11, 12}
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("g%d%d", r, c) }
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			res := []core.Resource{rich[(r+c)%5]}
			if (r*3+c)%4 == 0 {
				res = append(res, rich[(r+c+2)%5])
			}
			rolls := core.RollTable{totals[(r*3+c)%10]: res}
			require.NoError(t, g.AddVertex(core.Vertex{ID: id(r, c), Rolls: rolls}))
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c < 2 {
				require.NoError(t, g.AddEdge(id(r, c), id(r, c+1)))
			}
			if r < 2 {
				require.NoError(t, g.AddEdge(id(r, c), id(r+1, c)))
			}
		}
	}

	return g
}

func TestFindRoute_PathScenario(t *testing.T) {
	res, err := route.FindRoute(pathBoard(t), "v0", "v3")
	require.NoError(t, err)

	assert.Equal(t, route.Route{"v0", "v1", "v2", "v3"}, res.Route)
	assert.Equal(t, route.Settlements{"v1", "v3"}, res.Settlements)
	assert.Equal(t, 3, res.Weight)
	// v1 (w=2) 1600, v2 (w=1) 1800, v3 (w=1) 1800.
	assert.Equal(t, int64(5200), res.Cost)

	res, err = route.FindRoute(pathBoard(t), "v0", "v3", route.WithCost(route.UniformCost))
	require.NoError(t, err)
	assert.Equal(t, int64(3*route.CostUnit), res.Cost)
}

func TestFindRoute_Endpoints(t *testing.T) {
	g := pathBoard(t)

	_, err := route.FindRoute(nil, "v0", "v3")
	assert.ErrorIs(t, err, route.ErrNilBoard)
	_, err = route.FindRoute(g, "v0", "v0")
	assert.ErrorIs(t, err, route.ErrInvalidEndpoints)
	_, err = route.FindRoute(g, "v0", "nope")
	assert.ErrorIs(t, err, route.ErrInvalidEndpoints)
	_, err = route.FindRoute(g, "nope", "v3")
	assert.ErrorIs(t, err, route.ErrInvalidEndpoints)

	require.NoError(t, g.AddVertex(core.Vertex{ID: "island"}))
	_, err = route.FindRoute(g, "v0", "island")
	assert.ErrorIs(t, err, route.ErrUnreachable)
}

// detourBoard offers S–X–T (X barren) and S–a–b–T (a, b produce everything).
func detourBoard(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(core.Vertex{ID: "S"}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "X"}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "a", Rolls: core.RollTable{6: rich}}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "b", Rolls: core.RollTable{8: rich}}))
	require.NoError(t, g.AddVertex(core.Vertex{ID: "T", Rolls: core.RollTable{9: {core.Ore}}}))
	for _, e := range [][2]string{{"S", "X"}, {"X", "T"}, {"S", "a"}, {"a", "b"}, {"b", "T"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestFindRoute_CoefficientBendsRoute(t *testing.T) {
	g := detourBoard(t)

	res, err := route.FindRoute(g, "S", "T", route.WithCost(route.ResourceCost(0)))
	require.NoError(t, err)
	assert.Equal(t, route.Route{"S", "X", "T"}, res.Route)

	// coef 2: X costs 3000, T 2600 → 5600 direct; a, b cost 1000 each → 4600 around.
	res, err = route.FindRoute(g, "S", "T", route.WithCost(route.ResourceCost(2)))
	require.NoError(t, err)
	assert.Equal(t, route.Route{"S", "a", "b", "T"}, res.Route)
	assert.Equal(t, int64(4600), res.Cost)
	assert.Equal(t, route.Settlements{"a", "T"}, res.Settlements)
}

func TestFindRoute_MaxCost(t *testing.T) {
	g := detourBoard(t)
	cost := route.WithCost(route.ResourceCost(2))

	// Cheapest route costs 4600; a 4000 cap leaves T out of reach.
	_, err := route.FindRoute(g, "S", "T", cost, route.WithMaxCost(4000))
	require.ErrorIs(t, err, route.ErrUnreachable)

	res, err := route.FindRoute(g, "S", "T", cost, route.WithMaxCost(4600))
	require.NoError(t, err)
	assert.Equal(t, route.Route{"S", "a", "b", "T"}, res.Route)

	// FindAllRoutes ignores the cost cap.
	routes, _, err := route.FindAllRoutes(g, "S", "T", 2, route.WithMaxCost(1))
	require.NoError(t, err)
	assert.NotEmpty(t, routes)
}

func TestResourceCost_Panics(t *testing.T) {
	assert.Panics(t, func() { route.ResourceCost(-1) })
	assert.Panics(t, func() { route.WithMaxCost(-1) })
	assert.Panics(t, func() { route.WithMaxRoutes(-1) })
	assert.Panics(t, func() { route.WithParallel(-1) })
}

func TestFindAllRoutes_PathScenario(t *testing.T) {
	g := pathBoard(t)

	routes, sets, err := route.FindAllRoutes(g, "v0", "v3", 2)
	require.NoError(t, err)
	assert.Equal(t, []route.Route{{"v0", "v1", "v2", "v3"}}, routes)
	assert.Equal(t, []route.Settlements{{"v1", "v3"}}, sets)

	routes, sets, err = route.FindAllRoutes(g, "v0", "v3", 3)
	require.NoError(t, err)
	assert.Empty(t, routes)
	assert.Empty(t, sets)

	for _, k := range []int{0, -1} {
		routes, sets, err = route.FindAllRoutes(g, "v0", "v3", k)
		require.NoError(t, err)
		assert.Empty(t, routes)
		assert.Empty(t, sets)
	}

	_, _, err = route.FindAllRoutes(g, "v1", "v1", 1)
	assert.ErrorIs(t, err, route.ErrInvalidEndpoints)
}

func TestFindAllRoutes_Unreachable(t *testing.T) {
	g := pathBoard(t)
	require.NoError(t, g.AddVertex(core.Vertex{ID: "island"}))

	routes, _, err := route.FindAllRoutes(g, "v0", "island", 1)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

// TestFindAllRoutes_MatchesBruteForce checks every returned route against an
// unpruned enumeration filtered by settle.SelectExactly.
func TestFindAllRoutes_MatchesBruteForce(t *testing.T) {
	g := gridBoard(t)
	all, err := dfs.SimplePaths(g, "g00", "g22")
	require.NoError(t, err)
	require.Len(t, all.Paths, 12)

	for k := 1; k <= 5; k++ {
		routes, sets, err := route.FindAllRoutes(g, "g00", "g22", k)
		require.NoError(t, err)
		require.Len(t, sets, len(routes))

		var want []route.Route
		for _, p := range all.Paths {
			ws, err := core.Weights(g, p)
			require.NoError(t, err)
			if _, ok := settle.SelectExactly(ws, k); ok {
				want = append(want, route.Route(p))
			}
		}
		if want == nil {
			want = []route.Route{}
		}
		assert.Equal(t, want, routes, "k=%d", k)

		for i, r := range routes {
			assertRoute(t, g, r, "g00", "g22")
			assert.Len(t, sets[i], k)
			assertSettlements(t, r, sets[i])
		}
	}
}

func TestFindAllRoutes_ContainsChosenRoute(t *testing.T) {
	g := gridBoard(t)
	for _, end := range []string{"g02", "g11", "g20", "g22"} {
		chosen, err := route.FindRoute(g, "g00", end)
		require.NoError(t, err)

		routes, sets, err := route.FindAllRoutes(g, "g00", end, len(chosen.Settlements))
		require.NoError(t, err)
		assert.Contains(t, routes, chosen.Route, "end %s", end)
		for i, r := range routes {
			if fmt.Sprint(r) == fmt.Sprint(chosen.Route) {
				assert.Equal(t, chosen.Settlements, sets[i])
			}
		}
	}
}

func TestFindAllRoutes_ParallelMatchesSequential(t *testing.T) {
	g := gridBoard(t)
	for k := 1; k <= 4; k++ {
		seqR, seqS, err := route.FindAllRoutes(g, "g00", "g22", k)
		require.NoError(t, err)
		for _, n := range []int{2, 3, 8} {
			parR, parS, err := route.FindAllRoutes(g, "g00", "g22", k, route.WithParallel(n))
			require.NoError(t, err)
			assert.Equal(t, seqR, parR, "k=%d workers=%d", k, n)
			assert.Equal(t, seqS, parS, "k=%d workers=%d", k, n)
		}
	}
}

func TestFindAllRoutes_Caps(t *testing.T) {
	g := gridBoard(t)
	for _, par := range []int{0, 4} {
		_, _, err := route.FindAllRoutes(g, "g00", "g22", 2, route.WithParallel(par), route.WithMaxRoutes(1))
		assert.ErrorIs(t, err, route.ErrSearchExhausted)

		routes, _, err := route.FindAllRoutes(g, "g00", "g22", 2, route.WithParallel(par), route.WithMaxRoutes(12))
		assert.NoError(t, err)
		assert.Len(t, routes, 12)

		_, _, err = route.FindAllRoutes(g, "g00", "g22", 2, route.WithParallel(par), route.WithMaxDepth(4))
		assert.ErrorIs(t, err, route.ErrSearchExhausted)

		_, _, err = route.FindAllRoutes(g, "g00", "g22", 2, route.WithParallel(par), route.WithMaxExpansions(5))
		assert.ErrorIs(t, err, route.ErrSearchExhausted)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err = route.FindAllRoutes(g, "g00", "g22", 2, route.WithParallel(par), route.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// TestFindAllRoutes_DepthBoundsHopTable checks that a dead-end spur beyond
// the depth cap is pruned instead of failing the search, while a start that
// only reaches end through longer routes still reports the cap.
func TestFindAllRoutes_DepthBoundsHopTable(t *testing.T) {
	// S–A–T with the spur A–B–C–D hanging off A.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "T"} {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id}))
	}
	require.NoError(t, g.AddVertex(core.Vertex{ID: "S", Rolls: core.RollTable{6: {core.Wheat}}}))
	for _, e := range [][2]string{{"S", "A"}, {"A", "T"}, {"A", "B"}, {"B", "C"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	for _, par := range []int{0, 2} {
		routes, sets, err := route.FindAllRoutes(g, "S", "T", 1, route.WithParallel(par), route.WithMaxDepth(2))
		require.NoError(t, err, "workers=%d", par)
		assert.Equal(t, []route.Route{{"S", "A", "T"}}, routes)
		assert.Equal(t, []route.Settlements{{"S"}}, sets)

		_, _, err = route.FindAllRoutes(g, "S", "T", 1, route.WithParallel(par), route.WithMaxDepth(1))
		assert.ErrorIs(t, err, route.ErrSearchExhausted, "workers=%d", par)
	}
}

func assertRoute(t *testing.T, g *core.Graph, r route.Route, start, end string) {
	t.Helper()
	require.NotEmpty(t, r)
	assert.Equal(t, start, r[0])
	assert.Equal(t, end, r[len(r)-1])
	seen := make(map[string]bool, len(r))
	for i, id := range r {
		assert.False(t, seen[id], "repeat %s in %v", id, r)
		seen[id] = true
		if i > 0 {
			assert.True(t, g.HasEdge(r[i-1], id), "%s–%s not adjacent", r[i-1], id)
		}
	}
}

func assertSettlements(t *testing.T, r route.Route, s route.Settlements) {
	t.Helper()
	pos := make(map[string]int, len(r))
	for i, id := range r {
		pos[id] = i
	}
	last := -2
	for _, id := range s {
		p, ok := pos[id]
		require.True(t, ok, "settlement %s not on route", id)
		assert.Greater(t, p, last+1, "adjacent or unordered settlements %v", s)
		last = p
	}
}

// SPDX-License-Identifier: MIT

package route_test

import (
	"fmt"

	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/route"
)

// ExampleFindRoute picks settlements along a four-vertex line.
func ExampleFindRoute() {
	g := core.NewGraph()
	_ = g.AddVertex(core.Vertex{ID: "v0", Rolls: core.RollTable{8: {core.Wood}}})
	_ = g.AddVertex(core.Vertex{ID: "v1", Rolls: core.RollTable{6: {core.Brick, core.Wheat}}})
	_ = g.AddVertex(core.Vertex{ID: "v2", Rolls: core.RollTable{6: {core.Wood}}})
	_ = g.AddVertex(core.Vertex{ID: "v3", Rolls: core.RollTable{8: {core.Sheep}}})
	_ = g.AddEdge("v0", "v1")
	_ = g.AddEdge("v1", "v2")
	_ = g.AddEdge("v2", "v3")

	res, err := route.FindRoute(g, "v0", "v3")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Route, res.Settlements, res.Weight)

	alts, _, _ := route.FindAllRoutes(g, "v0", "v3", len(res.Settlements))
	fmt.Println(len(alts))
	// Output:
	// [v0 v1 v2 v3] [v1 v3] 3
	// 1
}

// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// catan.go — standard Catan tile pools.

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/hexroute/core"
)

// standardResources is the productive tile mix of a base-game board.
var standardResources = [...]core.Resource{
	core.Wood, core.Wood, core.Wood, core.Wood,
	core.Brick, core.Brick, core.Brick,
	core.Sheep, core.Sheep, core.Sheep, core.Sheep,
	core.Wheat, core.Wheat, core.Wheat, core.Wheat,
	core.Ore, core.Ore, core.Ore,
}

// standardNumbers is the base-game number token set; 7 never appears.
var standardNumbers = [...]int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// drawPool repeats pool cyclically to n items and shuffles them with rng.
func drawPool[T any](rng *rand.Rand, pool []T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = pool[i%len(pool)]
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

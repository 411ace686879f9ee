// SPDX-License-Identifier: MIT
// Package: hexroute/builder
//
// impl_hex.go — HexBoard(radius) and CatanBoard(radius) constructors.
//
// Canonical model:
//   • Tiles are pointy-top hexagons at axial coordinates (q, r) with
//     max(|q|, |r|, |q+r|) ≤ radius, listed in reading order (r asc, q asc).
//   • Vertices are tile corners; a corner shared by up to three tiles is one
//     vertex. Edges are tile sides.
//   • Corners live on an integer lattice (x in units of √3/2, y in units of
//     1/2), so sharing is detected exactly. Vertex indexes follow (y, x)
//     ascending and feed cfg.idFn.
//
// Contract:
//   • radius ≥ 0 (else ErrTooFewVertices).
//   • CatanBoard additionally requires cfg.rng (else ErrNeedRandSource).
//
// Sizes: radius 0 → 6 vertices / 6 edges; 1 → 24 / 30; 2 → 54 / 72.

package builder

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/hexroute/core"
)

const (
	methodHex    = "HexBoard"
	methodCatan  = "CatanBoard"
	minHexRadius = 0
)

// cornerOffsets walks a pointy-top hexagon clockwise from the top corner,
// in lattice units.
var cornerOffsets = [6][2]int{{0, -2}, {1, -1}, {1, 1}, {0, 2}, {-1, 1}, {-1, -1}}

// Tile is one hexagon of a stamped board. Number 0 marks the desert.
type Tile struct {
	Q, R     int
	Center   core.Point
	Resource core.Resource
	Number   int
}

// Desert reports whether the tile produces nothing.
func (t Tile) Desert() bool { return t.Number == 0 }

type latticePoint struct{ x, y int }

// hexLattice is the resolved geometry of a radius-r tile field.
type hexLattice struct {
	tiles   [][2]int       // axial (q, r) in reading order
	corners []latticePoint // sorted by (y, x)
	rings   [][6]int       // tile index → corner indexes, clockwise
}

func newHexLattice(radius int) hexLattice {
	var lat hexLattice
	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			if abs(q) <= radius && abs(r) <= radius && abs(q+r) <= radius {
				lat.tiles = append(lat.tiles, [2]int{q, r})
			}
		}
	}

	seen := make(map[latticePoint]struct{})
	for _, t := range lat.tiles {
		cx, cy := tileCenter(t[0], t[1])
		for _, off := range cornerOffsets {
			p := latticePoint{cx + off[0], cy + off[1]}
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				lat.corners = append(lat.corners, p)
			}
		}
	}
	slices.SortFunc(lat.corners, func(a, b latticePoint) int {
		if c := cmp.Compare(a.y, b.y); c != 0 {
			return c
		}
		return cmp.Compare(a.x, b.x)
	})

	index := make(map[latticePoint]int, len(lat.corners))
	for i, p := range lat.corners {
		index[p] = i
	}
	lat.rings = make([][6]int, len(lat.tiles))
	for ti, t := range lat.tiles {
		cx, cy := tileCenter(t[0], t[1])
		for k, off := range cornerOffsets {
			lat.rings[ti][k] = index[latticePoint{cx + off[0], cy + off[1]}]
		}
	}

	return lat
}

// tileCenter maps axial (q, r) onto the lattice.
func tileCenter(q, r int) (int, int) {
	return 2*q + r, 3 * r
}

// point converts a lattice point to a rendering position.
func (p latticePoint) point(spacing float64) core.Point {
	return core.Point{
		X: float64(p.x) * math.Sqrt(3) / 2 * spacing,
		Y: float64(p.y) / 2 * spacing,
	}
}

// build adds every corner with the given roll tables, then every tile side.
func (lat hexLattice) build(g *core.Graph, cfg builderConfig, method string, rolls []core.RollTable) error {
	ids := make([]string, len(lat.corners))
	for i, p := range lat.corners {
		ids[i] = cfg.idFn(i)
		v := core.Vertex{ID: ids[i], Pos: p.point(cfg.spacing), Rolls: rolls[i]}
		if err := addVertex(g, method, v); err != nil {
			return err
		}
	}
	for _, ring := range lat.rings {
		for k := range ring {
			if err := addEdge(g, method, ids[ring[k]], ids[ring[(k+1)%6]]); err != nil {
				return err
			}
		}
	}
	return nil
}

// HexBoard returns a Constructor for the corner lattice of a hexagonal tile
// field. Roll tables come from cfg.rollFn.
func HexBoard(radius int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if radius < minHexRadius {
			return fmt.Errorf("%s: radius=%d < min=%d: %w", methodHex, radius, minHexRadius, ErrTooFewVertices)
		}
		lat := newHexLattice(radius)
		rolls := make([]core.RollTable, len(lat.corners))
		for i := range rolls {
			rolls[i] = cfg.rollsFor(i, cfg.idFn(i))
		}
		return lat.build(g, cfg, methodHex, rolls)
	}
}

// CatanBoard returns a Constructor for HexBoard(radius) with stamped tiles.
// See StampTiles for the stamping rules.
func CatanBoard(radius int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if radius < minHexRadius {
			return fmt.Errorf("%s: radius=%d < min=%d: %w", methodCatan, radius, minHexRadius, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodCatan, ErrNeedRandSource)
		}
		lat := newHexLattice(radius)
		tiles := lat.stamp(cfg.rng, cfg.spacing)

		rolls := make([]core.RollTable, len(lat.corners))
		for ti, t := range tiles {
			if t.Desert() {
				continue
			}
			for _, ci := range lat.rings[ti] {
				if rolls[ci] == nil {
					rolls[ci] = core.RollTable{}
				}
				rolls[ci][t.Number] = append(rolls[ci][t.Number], t.Resource)
			}
		}
		return lat.build(g, cfg, methodCatan, rolls)
	}
}

// StampTiles returns the tiles CatanBoard(radius) stamps for the same
// options, in reading order.
func StampTiles(radius int, opts ...BuilderOption) ([]Tile, error) {
	if radius < minHexRadius {
		return nil, fmt.Errorf("%s: radius=%d < min=%d: %w", methodCatan, radius, minHexRadius, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodCatan, ErrNeedRandSource)
	}
	return newHexLattice(radius).stamp(cfg.rng, cfg.spacing), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// stamp draws resources and number tokens for every tile.
func (lat hexLattice) stamp(rng *rand.Rand, spacing float64) []Tile {
	desert := -1
	if len(lat.tiles) > 1 {
		desert = slices.Index(lat.tiles, [2]int{0, 0})
	}
	productive := len(lat.tiles)
	if desert >= 0 {
		productive--
	}
	resources := drawPool(rng, standardResources[:], productive)
	numbers := drawPool(rng, standardNumbers[:], productive)

	tiles := make([]Tile, len(lat.tiles))
	next := 0
	for i, t := range lat.tiles {
		cx, cy := tileCenter(t[0], t[1])
		tiles[i] = Tile{Q: t[0], R: t[1], Center: latticePoint{cx, cy}.point(spacing)}
		if i == desert {
			continue
		}
		tiles[i].Resource = resources[next]
		tiles[i].Number = numbers[next]
		next++
	}
	return tiles
}

// SPDX-License-Identifier: MIT

// Package builder assembles deterministic test and demo boards for hexroute.
//
// A board is built by BuildGraph from an ordered list of Constructors and a
// set of BuilderOptions that resolve into an immutable builderConfig:
//
//   - Path(n):          n vertices in a line, "0"—"1"—…—"n-1".
//   - Grid(rows, cols): a 4-neighbourhood lattice with IDs "r,c".
//   - HexBoard(radius): the corner lattice of a hexagonal tile field, where
//     vertices are tile corners and edges are tile sides.
//   - CatanBoard(radius): HexBoard plus tile stamping. Every tile receives a
//     resource and a number token drawn from the standard Catan pools; every
//     corner inherits the (number → resource) pairs of the tiles it touches.
//
// Vertex-ID schemes (IDFn):
//
//   - DefaultIDFn:      decimal strings ("0","1",…).
//   - SymbolIDFn:       single letters ("A"…"Z").
//   - SymbolNumberIDFn: prefix + decimal ("v0","v1",…).
//   - PaddedIDFn:       prefix + zero-padded decimal ("v00","v01",…), which
//     keeps lexicographic order equal to index order.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical boards (IDs, positions, rolls).
//   - Option constructors panic on meaningless input; constructors never panic
//     and return sentinel errors (ErrTooFewVertices, ErrNeedRandSource, …).
package builder

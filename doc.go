// SPDX-License-Identifier: MIT

// Package hexroute recommends, verifies and calibrates settlement routes on
// Catan-style boards.
//
// 🚀 What is hexroute?
//
//	A deterministic engine built around one question: does the cheapest
//	route, with resources discounted by a coefficient, put settlements where
//	the dice actually pay out?
//		• RouteFinder: resource-aware Dijkstra plus maximum-weight settlement selection
//		• RouteEnumerator: every simple route that can hold k settlements
//		• YieldSimulator: seeded two-dice simulation and a diversity-aware score
//		• Calibrator: batch feedback loop that tunes the coefficient
//
// Under the hood, everything is organized into small packages:
//
//	core/      — board Graph, Vertex, roll tables and resources
//	builder/   — path, grid, hex and stamped Catan boards
//	bfs/       — hop distances (enumeration pruning)
//	dfs/       — bounded simple-path enumeration
//	dijkstra/  — integer-cost shortest paths with ID tie-breaks
//	settle/    — non-adjacent settlement selection and set disagreement
//	route/     — FindRoute and FindAllRoutes
//	yield/     — Simulate and Score
//	verify/    — one chosen-versus-simulated comparison, render layers
//	render/    — positioned layers for drawing a verification
//	calibrate/ — the coefficient feedback loop
//	journal/   — SQLite journal of calibration runs
//	config/    — YAML configuration
//	cmd/hexroute — command-line front end
//
// Quick ASCII example:
//
//	    S───X───T
//	    │       │
//	    a───────b
//
//	with X barren and a, b productive, a positive coefficient sends the
//	route S─a─b─T and settles a and T.
//
//	go run ./cmd/hexroute verify -from v00 -to v23
package hexroute

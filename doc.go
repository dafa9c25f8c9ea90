// Package asterfield is an in-memory solver for the asteroid-field docking
// puzzle: a probe slides across a 2-D grid, pushing contiguous runs of
// asteroids one cell at a time, until it reaches the docking bay.
//
// 🚀 What is asterfield?
//
//	A small, deterministic state-space search library that brings together:
//		• Field model: immutable grid configurations with push-move generation
//		• Traversals: exhaustive DFS, shortest-path BFS, greedy best-first
//		• Heuristics: Manhattan distance, asteroid-blocking penalty
//		• Reporting: solution traces, expansion counts, visit order, timings
//
// ✨ Why choose asterfield?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always reproduce identical searches
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – custom hooks (OnExpand) and pluggable heuristics
//
// Under the hood, everything is organized under two subpackages plus a driver:
//
//	field/          — Cell, Position, Direction and immutable Config with Successors
//	solve/          — DFS, BFS and BestFirst engines over field configurations
//	cmd/asterfield/ — thin CLI: solve a puzzle file, benchmark all engines
//
// Quick ASCII example:
//
//	    # # # # #
//	    # P A . #
//	    # . . . #
//	    # . . D #
//	    # # # # #
//
//	the probe P pushes the asteroid A right, then slides down to the dock D.
//
// Dive into README.md for full examples and the puzzle's movement rules.
//
//	go get github.com/katalvlaran/asterfield
package asterfield

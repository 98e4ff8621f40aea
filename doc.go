// Package tilepuzzle is the root of a tile-placement puzzle toolkit: a
// port-indexed graph primitive, a set of regular-tessellation boards, a
// region-growing generator, and five independent placement solvers
// (GRASP, exact-cover, simulated annealing, and two genetic variants)
// that fill a board with required groups of shapes.
//
// Subpackages:
//
//	topology      — fixed-arity port-indexed graph, shared by boards and shapes
//	board         — tessellated grids (square, hexagon, triangle)
//	shapekit      — Shape, Bundle, Puzzle
//	occupancy     — dense byte-per-cell occupancy mask
//	colorscale    — HSV heatmap ramp for bundle-area visualization
//	embedding     — the anchor+rotation BFS placement primitive
//	heuristic     — candidate generation and scoring for greedy placement
//	generator     — region-growing puzzle generation
//	grasp         — greedy randomized adaptive search placement solver
//	exactcover    — Algorithm-X exact-cover placement solver
//	metaheuristic — simulated annealing and genetic placement solvers
//	solve         — dispatches an algorithm name to its solver package
//	puzzleio      — puzzle file (de)serialization
//	puzzlecfg     — generator configuration file loading
//	cmd/tilepuzzle — the generate/solve CLI
package tilepuzzle

// Package generator builds a tessellated board, partitions it into
// connected shapes by region growing, merges undersized residuals, groups
// the survivors into colour-coded bundles, and returns the result as a
// fully-tagged Puzzle.
//
// Generate's output is always a complete reference solution: every board
// cell carries a (bundle_id, figure_id) pair. Callers who want the
// unsolved "task" form call Puzzle.ClearBoard themselves.
package generator

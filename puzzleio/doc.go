// Package puzzleio loads and saves Puzzle files: the JSON document format
// that a generator writes and a solver both reads and rewrites.
//
// Load and Save are the only two entry points. Everything else in this
// package is the document schema and the plumbing that converts it to and
// from a shapekit.Puzzle.
package puzzleio

// Package shapekit defines Shape, Bundle, and Puzzle: the pieces that get
// placed, the groups they must be placed in, and the board+bundles pair a
// generator produces and a solver consumes.
//
// Shapes and bundles are immutable once built; Puzzle.Clone deep-copies only
// the board, sharing Shape and Bundle pointers, since a solver never mutates
// a piece's own topology.
package shapekit

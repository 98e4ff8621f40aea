// Package exactcover implements an Algorithm-X style exact-cover search:
// rows are (bundle, shape, anchor, rotation) tuples that produce a legal
// footprint; columns are "this shape must be placed once" (one per shape)
// and "this cell must be covered" (one per board cell). Column selection
// picks the minimum-incidence column; backtracking is classic cover/uncover.
//
// Only viable on very small puzzles — the matrix is every (shape, cell,
// rotation) combination — but it is the only solver in this module that can
// certify a full W*H cover rather than merely approximate one.
package exactcover

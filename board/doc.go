// Package board builds and maintains the tessellated game board: a
// topology.Graph whose nodes are cells of a regular tessellation (square,
// hexagon, or triangle), carrying per-cell coordinates and solution tags.
//
// What:
//
//   - Kind selects the tessellation and fixes the board's port arity.
//   - New builds the full board (vertices + edges) for a given Kind and
//     dimensions in one deterministic pass.
//   - Cell carries the coordinates and the (bundle id, figure id) tags a
//     generator or solver writes into the board.
//
// Why one constructor per Kind rather than three free functions: callers
// (generator, puzzleio) only ever need "give me an empty board of this
// kind and size" — splitting that into Kind-specific exported constructors
// would just move the switch from inside New to every call site.
package board

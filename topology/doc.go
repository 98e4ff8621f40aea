// Package topology defines Graph, the fixed-arity port-indexed graph shared
// by every board and every shape in this module.
//
// What:
//
//   - A Graph has a fixed max-ports arity M (3, 4, or 6 in practice, though
//     the type itself does not enforce a ceiling).
//   - Each node has a dense 0-based id and an array of M neighbor slots
//     ("ports"). An empty port holds the sentinel Absent.
//   - Edges are inserted in directed pairs: AddEdge wires u-[pu]->v and
//     v-[pv]->u in one call; AddDirectedEdge wires a single direction.
//
// Why a dedicated type instead of a general adjacency-list graph (like
// core.Graph): board cells and shape cells need a *stable, intrinsic* port
// index per edge — "the edge that left node u through its 2nd neighbor
// slot" — because rotation (see package embedding) is defined entirely in
// terms of cyclic port shifts. A string-keyed adjacency list has no concept
// of "slot 2"; an array of fixed arity does, for free.
//
// Concurrency: Graph guards its node/edge storage with the same two-mutex
// split as core.Graph (one for node count, one for neighbor arrays), even
// though every caller in this module drives a Graph from a single
// goroutine (see the module's concurrency model). A primitive type earns
// its keep by being safe to share; the callers above it decide how much of
// that safety they actually need.
package topology

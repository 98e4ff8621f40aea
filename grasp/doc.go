// Package grasp implements the GRASP (greedy randomized adaptive search
// procedure) placement engine: repeated randomized greedy constructions,
// each placing bundles largest-first via per-bundle recursive backtracking
// over a Restricted Candidate List, keeping the best-scoring construction
// found within a time and iteration budget.
package grasp

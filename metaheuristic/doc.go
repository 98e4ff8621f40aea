// Package metaheuristic implements three solvers: a simulated-annealing
// bundle-order optimizer and a genetic-algorithm hyper-heuristic, which
// share one chromosome representation and one greedy fitness builder, and
// a genetic-algorithm "sticky anchor" variant that drops the permutation
// and the builder altogether.
//
// One package, one file per algorithm variant plus shared helpers — the
// same shape as the teacher's tsp package (two_opt.go, three_opt.go,
// approx.go, exact.go, bb.go sharing types.go/tour.go).
package metaheuristic

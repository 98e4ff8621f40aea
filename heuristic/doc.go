// Package heuristic implements the four candidate-generation and scoring
// policies used by the metaheuristic package's greedy builder: MaxContact,
// BottomLeft, MinHoles, and WallHugging. (GRASP scores its candidates with
// its own contact score and does not use this package.)
//
// WallHugging is the only implementation of the original's two "hug the
// boundary" formulas. heuristics.cpp's sibling solver calls the same idea
// CenterGravity and scores Euclidean distance to the board's center instead
// of Chebyshev-ish distance to the nearest wall; that is a genuinely
// different number, so no separate CenterGravity score exists here.
// ParseKind accepts the name "CenterGravity" only as an alias that selects
// WallHugging.
package heuristic

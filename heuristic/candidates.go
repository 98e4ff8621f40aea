package heuristic

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/occupancy"
	"github.com/gridforge/tilepuzzle/topology"
)

// bottomLeftScanLimit caps how many empty cells BottomLeft scans before
// giving up on finding more candidates near the board's origin — scanning
// the whole board on every call would make large boards pay for exhaustive
// search when the first handful of cells almost always suffice.
const bottomLeftScanLimit = 50

// Candidates suggests anchor cells worth trying for kind against b's current
// occ mask.
func Candidates(kind Kind, b *board.Board, occ occupancy.Mask) []int {
	if isAllZero(occ) {
		switch kind {
		case BottomLeft, WallHugging:
			return []int{0}
		default:
			return []int{centerCellID(b)}
		}
	}

	switch kind {
	case BottomLeft:
		return firstEmptyCells(b, occ, bottomLeftScanLimit)
	default: // MaxContact, MinHoles, WallHugging
		return emptyNeighborsOfOccupied(b, occ)
	}
}

func isAllZero(occ occupancy.Mask) bool {
	return occ.Count() == 0
}

func centerCellID(b *board.Board) int {
	return (b.Height()/2)*b.Width() + b.Width()/2
}

func firstEmptyCells(b *board.Board, occ occupancy.Mask, limit int) []int {
	out := make([]int, 0, limit)
	for id := 0; id < b.Size() && len(out) < limit; id++ {
		if !occ.Get(id) {
			out = append(out, id)
		}
	}
	return out
}

// emptyNeighborsOfOccupied returns the deduplicated set of empty cells
// adjacent to at least one occupied cell, using a hashset to match the
// dedup-by-set idiom the rest of this module leans on for footprint/column
// bookkeeping.
func emptyNeighborsOfOccupied(b *board.Board, occ occupancy.Mask) []int {
	set := hashset.New()
	for id := 0; id < b.Size(); id++ {
		if !occ.Get(id) {
			continue
		}
		for p := 0; p < b.MaxPorts(); p++ {
			n := b.Neighbor(id, p)
			if n == topology.Absent || occ.Get(n) {
				continue
			}
			set.Add(n)
		}
	}

	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out
}

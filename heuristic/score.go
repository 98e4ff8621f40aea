package heuristic

import (
	"math"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/occupancy"
	"github.com/gridforge/tilepuzzle/topology"
)

// Evaluate scores a candidate footprint under kind. Higher is always
// better; an empty footprint scores -Inf regardless of kind, since no real
// placement ever produces one.
func Evaluate(kind Kind, b *board.Board, occ occupancy.Mask, footprint []int) float64 {
	if len(footprint) == 0 {
		return math.Inf(-1)
	}

	switch kind {
	case MaxContact:
		return maxContactScore(b, occ, footprint)
	case BottomLeft:
		return bottomLeftScore(footprint)
	case MinHoles:
		return minHolesScore(b, occ, footprint)
	case WallHugging:
		return wallHuggingScore(b, footprint)
	default:
		return math.Inf(-1)
	}
}

func inFootprint(footprint []int, id int) bool {
	for _, f := range footprint {
		if f == id {
			return true
		}
	}
	return false
}

// maxContactScore counts (cell, occupied-neighbor) pairs across the
// footprint.
func maxContactScore(b *board.Board, occ occupancy.Mask, footprint []int) float64 {
	count := 0
	for _, id := range footprint {
		for p := 0; p < b.MaxPorts(); p++ {
			n := b.Neighbor(id, p)
			if n != topology.Absent && occ.Get(n) {
				count++
			}
		}
	}
	return float64(count)
}

// bottomLeftScore is the negated mean cell id over the footprint, favoring
// low ids (which sit toward the board's origin in row-major numbering).
func bottomLeftScore(footprint []int) float64 {
	sum := 0
	for _, id := range footprint {
		sum += id
	}
	mean := float64(sum) / float64(len(footprint))
	return -mean
}

// minHolesScore rewards occupied-neighbor contact and penalizes empty
// neighbors that the footprint doesn't itself cover — placements that would
// strand small unreachable gaps score lower.
func minHolesScore(b *board.Board, occ occupancy.Mask, footprint []int) float64 {
	occupiedNeighbors := 0
	emptyNeighborsNotInFootprint := 0

	for _, id := range footprint {
		for p := 0; p < b.MaxPorts(); p++ {
			n := b.Neighbor(id, p)
			if n == topology.Absent {
				continue
			}
			switch {
			case occ.Get(n):
				occupiedNeighbors++
			case !inFootprint(footprint, n):
				emptyNeighborsNotInFootprint++
			}
		}
	}

	return float64(3*occupiedNeighbors - emptyNeighborsNotInFootprint)
}

// wallHuggingScore rewards footprints near the board boundary: for each
// cell, its distance to the nearest wall is min(x, y, W-1-x, H-1-y); the
// total is negated so closer-to-the-wall (smaller distance) scores higher.
func wallHuggingScore(b *board.Board, footprint []int) float64 {
	w, h := b.Width(), b.Height()
	total := 0
	for _, id := range footprint {
		x, y := b.Coordinate(id)
		total += minInt(x, y, w-1-x, h-1-y)
	}
	return -float64(total)
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

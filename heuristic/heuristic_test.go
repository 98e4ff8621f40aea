package heuristic_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/heuristic"
	"github.com/gridforge/tilepuzzle/occupancy"
)

func TestCandidates_EmptyMask(t *testing.T) {
	b, err := board.New(board.Hexagon, 3, 3)
	require.NoError(t, err)
	occ := occupancy.New(b.Size())

	// On an empty hex 3x3 board, MaxContact falls back to the center cell.
	assert.Equal(t, []int{4}, heuristic.Candidates(heuristic.MaxContact, b, occ))
	assert.Equal(t, []int{0}, heuristic.Candidates(heuristic.BottomLeft, b, occ))
	assert.Equal(t, []int{0}, heuristic.Candidates(heuristic.WallHugging, b, occ))
	assert.Equal(t, []int{4}, heuristic.Candidates(heuristic.MinHoles, b, occ))
}

func TestCandidates_MaxContactAfterOnePlacement(t *testing.T) {
	b, err := board.New(board.Hexagon, 3, 3)
	require.NoError(t, err)
	occ := occupancy.New(b.Size())
	occ.Set(4)

	want := map[int]bool{}
	for p := 0; p < b.MaxPorts(); p++ {
		n := b.Neighbor(4, p)
		if n != -1 {
			want[n] = true
		}
	}

	got := heuristic.Candidates(heuristic.MaxContact, b, occ)
	gotSet := map[int]bool{}
	for _, id := range got {
		gotSet[id] = true
	}
	assert.Equal(t, want, gotSet)
}

func TestCandidates_BottomLeftReturnsFirst50InOrder(t *testing.T) {
	b, err := board.New(board.Square, 10, 10)
	require.NoError(t, err)
	occ := occupancy.New(b.Size())
	occ.Set(0) // break the all-zero-mask special case

	got := heuristic.Candidates(heuristic.BottomLeft, b, occ)
	assert.True(t, sort.IntsAreSorted(got))
	assert.LessOrEqual(t, len(got), 50)
}

func TestEvaluate_EmptyFootprintIsNegInf(t *testing.T) {
	b, err := board.New(board.Square, 3, 3)
	require.NoError(t, err)
	occ := occupancy.New(b.Size())
	assert.True(t, math.IsInf(heuristic.Evaluate(heuristic.MaxContact, b, occ, nil), -1))
}

func TestEvaluate_BottomLeftFavorsLowIds(t *testing.T) {
	b, err := board.New(board.Square, 5, 5)
	require.NoError(t, err)
	occ := occupancy.New(b.Size())

	low := heuristic.Evaluate(heuristic.BottomLeft, b, occ, []int{0, 1})
	high := heuristic.Evaluate(heuristic.BottomLeft, b, occ, []int{23, 24})
	assert.Greater(t, low, high)
}

func TestEvaluate_WallHuggingFavorsBoundary(t *testing.T) {
	b, err := board.New(board.Square, 5, 5)
	require.NoError(t, err)
	occ := occupancy.New(b.Size())

	corner := heuristic.Evaluate(heuristic.WallHugging, b, occ, []int{b.NodeID(0, 0)})
	center := heuristic.Evaluate(heuristic.WallHugging, b, occ, []int{b.NodeID(2, 2)})
	assert.Greater(t, corner, center)
}

func TestEvaluate_MaxContactCountsOccupiedNeighbors(t *testing.T) {
	b, err := board.New(board.Square, 3, 3)
	require.NoError(t, err)
	occ := occupancy.New(b.Size())
	center := b.NodeID(1, 1)
	occ.Set(center)

	footprint := []int{b.NodeID(0, 1)} // west neighbor of center
	score := heuristic.Evaluate(heuristic.MaxContact, b, occ, footprint)
	assert.Equal(t, float64(1), score)
}

func TestParseKind_AcceptsCenterGravityAlias(t *testing.T) {
	k, err := heuristic.ParseKind("CenterGravity")
	require.NoError(t, err)
	assert.Equal(t, heuristic.WallHugging, k)

	_, err = heuristic.ParseKind("Bogus")
	assert.Error(t, err)
}

// Package embedding implements the single primitive every placement
// decision in this module routes through: can Shape F be laid on Board B
// at anchor cell a under rotation r?
//
// The walk is a breadth-first traversal of the shape, mirroring the
// teacher's bfs.walker shape (explicit queue slice, visited set, running
// result) even though here the graph being walked is a Shape, not a
// general core.Graph — the embedding primitive only ever needs to follow
// ports outward from an anchor, never arbitrary re-visits.
package embedding

import (
	"errors"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

// Sentinel errors. ErrDoesNotFit is not a programming error — every caller
// is expected to hit it constantly during search — so solvers branch on it
// with errors.Is rather than treating it as exceptional.
var (
	// ErrDoesNotFit indicates the shape cannot be mapped onto the board at
	// the given anchor and rotation: a port led off the board, or two shape
	// nodes collided on the same board cell.
	ErrDoesNotFit = errors.New("embedding: shape does not fit at anchor/rotation")

	// ErrEmptyShape indicates the shape has zero nodes.
	ErrEmptyShape = errors.New("embedding: shape has no nodes")

	// ErrInvalidRotation indicates rotation was negative or >= the board's
	// MaxPorts. This is refused outright, never silently reduced mod M —
	// a caller that passes a bad rotation has a bug worth surfacing, not a
	// value worth guessing at.
	ErrInvalidRotation = errors.New("embedding: rotation out of range")
)

// NewRotation validates r against a board's port arity and returns it as a
// topology.Rotation, or ErrInvalidRotation if r is negative or >= maxPorts.
func NewRotation(r, maxPorts int) (topology.Rotation, error) {
	if r < 0 || r >= maxPorts {
		return 0, ErrInvalidRotation
	}
	return topology.Rotation(r), nil
}

// Embed attempts to map every node of f onto a distinct cell of b, anchored
// at board cell a, under the given port-cyclic rotation. On success it
// returns the footprint: a slice of length f.Size() where footprint[i] is
// the board cell shape-node i maps to (footprint[0] == anchor always). On
// failure it returns ErrDoesNotFit.
//
// Embed does not check cell occupancy — only that the shape stays on the
// board and maps injectively. Checking a footprint against a solver's
// occupied mask is the caller's responsibility.
//
// Complexity: O(K*M) where K = f.Size() and M = b.MaxPorts().
func Embed(b *board.Board, anchor int, f *shapekit.Shape, rotation topology.Rotation) ([]int, error) {
	k := f.Size()
	if k == 0 {
		return nil, ErrEmptyShape
	}

	mapping := make([]int, k)
	for i := range mapping {
		mapping[i] = topology.Absent
	}
	mapping[0] = anchor

	visited := make([]bool, k)
	visited[0] = true

	// used tracks which board cells the mapping has already claimed, so a
	// collision check stays O(1) instead of rescanning mapping on every
	// visited node — the latter would make the whole walk O(K^2*M).
	used := make(map[int]bool, k)
	used[anchor] = true

	queue := make([]int, 1, k)
	queue[0] = 0

	maxPorts := b.MaxPorts()

	for head := 0; head < len(queue); head++ {
		uFig := queue[head]
		uBoard := mapping[uFig]

		for p := 0; p < f.MaxPorts(); p++ {
			vFig := f.Neighbor(uFig, p)
			if vFig == topology.Absent {
				continue
			}
			if visited[vFig] {
				continue
			}

			rotPort := (p + int(rotation)) % maxPorts
			vBoard := b.Neighbor(uBoard, rotPort)
			if vBoard == topology.Absent {
				return nil, ErrDoesNotFit
			}
			if used[vBoard] {
				return nil, ErrDoesNotFit
			}

			mapping[vFig] = vBoard
			visited[vFig] = true
			used[vBoard] = true
			queue = append(queue, vFig)
		}
	}

	return mapping, nil
}

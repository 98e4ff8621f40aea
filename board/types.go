package board

import (
	"errors"
	"fmt"

	"github.com/gridforge/tilepuzzle/topology"
)

// Kind selects a regular tessellation.
type Kind int

const (
	// Square is a 4-neighbor grid: ports 0=N, 1=E, 2=S, 3=W.
	Square Kind = iota
	// Hexagon is a 6-neighbor odd-r offset grid: ports 0..5 clockwise from NE.
	Hexagon
	// Triangle is a 3-neighbor grid of alternating up/down triangles. Every
	// edge joins the same port index on both cells: ports 0 and 1 are the
	// horizontal neighbors (up cells: 0=left, 1=right; down cells: 0=right,
	// 1=left), and port 2 is the vertical bond to the opposite orientation.
	Triangle
)

// MaxPorts returns the fixed port arity for k.
func (k Kind) MaxPorts() int {
	switch k {
	case Square:
		return 4
	case Hexagon:
		return 6
	case Triangle:
		return 3
	default:
		panic(fmt.Sprintf("board: unknown Kind %d", int(k)))
	}
}

// String renders a human-readable tessellation name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Square:
		return "Square"
	case Hexagon:
		return "Hexagon"
	case Triangle:
		return "Triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// EmptyTag is the sentinel value for an untagged cell's BundleID/FigureID.
const EmptyTag = -1

// Sentinel errors for board construction.
var (
	// ErrBadDimensions indicates width or height was < 1.
	ErrBadDimensions = errors.New("board: width and height must be >= 1")
)

// Cell holds one board node's coordinates and solver tags. BundleID and
// FigureID default to EmptyTag; invariant: BundleID == EmptyTag iff
// FigureID == EmptyTag — a cell is either untagged or fully tagged, never
// half-tagged.
type Cell struct {
	X, Y              int
	BundleID, FigureID int
}

// Board is a topology.Graph specialized to a tessellated grid: every node
// is a Cell at (x, y), wired according to its Kind's adjacency rule.
type Board struct {
	*topology.Graph

	kind          Kind
	width, height int
	cells         []Cell
}

// New builds a Board of the given Kind and dimensions, fully wired per the
// tessellation's adjacency rule in one deterministic pass. Square and
// triangle wiring is deterministic; hexagon uses the documented odd-r
// offset vectors.
func New(kind Kind, width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}

	b := &Board{
		Graph:  topology.NewGraph(kind.MaxPorts()),
		kind:   kind,
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := b.Graph.AddNode()
			b.cells[id] = Cell{X: x, Y: y, BundleID: EmptyTag, FigureID: EmptyTag}
		}
	}

	switch kind {
	case Square:
		b.wireSquare()
	case Hexagon:
		b.wireHexagon()
	case Triangle:
		b.wireTriangle()
	default:
		return nil, fmt.Errorf("board: unknown Kind %d", int(kind))
	}

	return b, nil
}

// Kind returns the board's tessellation.
func (b *Board) Kind() Kind { return b.kind }

// Width returns the board's column count.
func (b *Board) Width() int { return b.width }

// Height returns the board's row count.
func (b *Board) Height() int { return b.height }

// NodeID returns the node id at (x, y), or topology.Absent if out of bounds.
// Complexity: O(1).
func (b *Board) NodeID(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return topology.Absent
	}
	return y*b.width + x
}

// Coordinate returns the (x, y) a node id was assigned at construction.
func (b *Board) Coordinate(id int) (x, y int) {
	c := b.cells[id]
	return c.X, c.Y
}

// Cell returns a copy of the tag/coordinate record for node id.
func (b *Board) Cell(id int) Cell {
	return b.cells[id]
}

// SetTags writes (bundleID, figureID) onto node id's cell.
func (b *Board) SetTags(id, bundleID, figureID int) {
	b.cells[id].BundleID = bundleID
	b.cells[id].FigureID = figureID
}

// ClearTags resets every cell's BundleID and FigureID to EmptyTag, turning a
// solved board back into its unsolved starting form.
func (b *Board) ClearTags() {
	for i := range b.cells {
		b.cells[i].BundleID = EmptyTag
		b.cells[i].FigureID = EmptyTag
	}
}

// Clone deep-copies the board: topology and every cell tag, independent of
// b. Puzzle.Clone delegates here, so a copy can be cleared or solved
// without touching the original board's tags.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		Graph:  b.Graph.Clone(),
		kind:   b.kind,
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// wireSquare connects each cell to its East (port 1) and South (port 2)
// neighbor; the reverse edge lands on West (port 3) / North (port 0) per
// the square opposite-port rule (opposite = port + 2 mod 4).
func (b *Board) wireSquare() {
	w, h := b.width, b.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			if x < w-1 {
				_ = b.Graph.AddEdge(id, y*w+(x+1), 1, 3)
			}
			if y < h-1 {
				_ = b.Graph.AddEdge(id, (y+1)*w+x, 2, 0)
			}
		}
	}
}

// hexEvenRowDX/DY and hexOddRowDX/DY are the odd-r offset neighbor vectors,
// indexed by port 0..5 clockwise from north-east. Even-indexed rows and
// odd-indexed rows use different vectors because odd-r offset coordinates
// shift every other row by half a cell.
var (
	hexEvenRowDX = [6]int{0, 1, 0, -1, -1, -1}
	hexEvenRowDY = [6]int{-1, 0, 1, 1, 0, -1}
	hexOddRowDX  = [6]int{1, 1, 1, 0, -1, 0}
	hexOddRowDY  = [6]int{-1, 0, 1, 1, 0, -1}
)

// wireHexagon connects each cell to all six geometric neighbors using the
// odd-r offset vectors; port p's opposite is (p+3) mod 6.
func (b *Board) wireHexagon() {
	w, h := b.width, b.height
	for y := 0; y < h; y++ {
		dx, dy := &hexEvenRowDX, &hexEvenRowDY
		if y%2 != 0 {
			dx, dy = &hexOddRowDX, &hexOddRowDY
		}
		for x := 0; x < w; x++ {
			id := y*w + x
			for p := 0; p < 6; p++ {
				nx, ny := x+dx[p], y+dy[p]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				nid := ny*w + nx
				_ = b.Graph.AddEdge(id, nid, p, (p+3)%6)
			}
		}
	}
}

// wireTriangle connects each cell horizontally and, depending on its
// up/down orientation, vertically through port 2<->2 to the triangle of
// opposite orientation directly above or below it. Every edge bonds the
// same port index on both cells: an up cell and the down cell to its right
// share port 1, a down cell and the up cell to its right share port 0.
// Orientation alternates with (x+y) mod 2: "up" triangles (even) bond
// downward to the "down" triangle below them; "down" triangles bond upward.
func (b *Board) wireTriangle() {
	w, h := b.width, b.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			isUp := (x+y)%2 == 0

			if x < w-1 {
				hp := 0
				if isUp {
					hp = 1
				}
				_ = b.Graph.AddEdge(id, y*w+(x+1), hp, hp)
			}
			if isUp {
				if y < h-1 {
					_ = b.Graph.AddEdge(id, (y+1)*w+x, 2, 2)
				}
			} else {
				if y > 0 {
					_ = b.Graph.AddEdge(id, (y-1)*w+x, 2, 2)
				}
			}
		}
	}
}

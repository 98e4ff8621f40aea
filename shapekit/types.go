package shapekit

import (
	"errors"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/colorscale"
	"github.com/gridforge/tilepuzzle/topology"
)

// ErrTagInconsistent indicates a cell has a bundle id but no figure id, or
// vice versa: a cell must be either fully untagged or fully tagged.
var ErrTagInconsistent = errors.New("shapekit: bundle_id/figure_id tag mismatch")

// Shape is a connected sub-graph of a board: node ids 0..K-1 for a K-cell
// piece, wired with the same port arity as the board it was cut from, and
// carrying a human name for diagnostics and serialization. The generator
// builds shapes from board regions as port-index-preserving induced
// subgraphs (topology.Graph.InducedSubgraph); puzzleio rebuilds them from a
// puzzle file's stored topology.
type Shape struct {
	*topology.Graph
	Name string
}

// NewShape wraps an already-built induced subgraph with its diagnostic name.
func NewShape(name string, g *topology.Graph) *Shape {
	return &Shape{Graph: g, Name: name}
}

// Bundle is a group of Shapes that must be placed together, all or none.
// Immutable once built.
type Bundle struct {
	ID        int
	Shapes    []*Shape
	TotalArea int
	Color     colorscale.RGB
}

// NewBundle computes TotalArea from the shapes' sizes and returns an
// immutable Bundle. Color defaults to zero; generator.colourBundles fills
// it in once every bundle in a batch is known, since the heatmap ramp needs
// the min/max area across the whole batch, which a single bundle can't see.
func NewBundle(id int, shapes []*Shape) *Bundle {
	area := 0
	for _, s := range shapes {
		area += s.Size()
	}
	return &Bundle{ID: id, Shapes: shapes, TotalArea: area}
}

// Puzzle is a (Board, Bundles) pair plus a free-form name. No entity is
// destroyed before the Puzzle that owns it: Shapes and Bundles live as long
// as the Puzzle (or a Clone of it) does.
type Puzzle struct {
	Board   *board.Board
	Bundles []*Bundle
	Name    string
}

// Clone deep-copies the board; Shapes and Bundles are shared by reference
// since they are immutable.
func (p *Puzzle) Clone() *Puzzle {
	return &Puzzle{
		Board:   p.Board.Clone(),
		Bundles: p.Bundles,
		Name:    p.Name,
	}
}

// ClearBoard resets every cell's tags to EmptyTag, turning a solved
// ("target") puzzle into its unsolved ("task") form.
func (p *Puzzle) ClearBoard() {
	p.Board.ClearTags()
}

// Validate checks the tag-consistency invariant over every board cell. It
// is not required by any placement algorithm — every solver in this module
// only ever writes bundle_id and figure_id together — but it is exactly the
// check a serialization layer should run before writing a puzzle file, so
// puzzleio.Save calls it.
func (p *Puzzle) Validate() error {
	for id := 0; id < p.Board.Size(); id++ {
		c := p.Board.Cell(id)
		if (c.BundleID == board.EmptyTag) != (c.FigureID == board.EmptyTag) {
			return ErrTagInconsistent
		}
	}
	return nil
}

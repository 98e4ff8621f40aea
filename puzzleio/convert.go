package puzzleio

import (
	"github.com/pkg/errors"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

// ErrUnknownGridType indicates a document's grid.type field named a
// tessellation this module does not recognize.
var ErrUnknownGridType = errors.New("puzzleio: unknown grid type")

// toDocument converts a Puzzle into its on-disk form.
func toDocument(p *shapekit.Puzzle) document {
	b := p.Board
	doc := document{
		Grid: gridDoc{
			Width:    b.Width(),
			Height:   b.Height(),
			Type:     int(b.Kind()),
			MaxPorts: b.MaxPorts(),
		},
	}

	doc.Cells = make([]cellDoc, b.Size())
	for id := 0; id < b.Size(); id++ {
		c := b.Cell(id)
		bundleID, figureID := c.BundleID, c.FigureID
		doc.Cells[id] = cellDoc{
			ID:       id,
			X:        c.X,
			Y:        c.Y,
			BundleID: &bundleID,
			FigureID: &figureID,
			Ports:    b.Neighbors(id),
		}
	}

	doc.Bundles = make([]bundleDoc, len(p.Bundles))
	for i, bundle := range p.Bundles {
		shapes := make([]shapeDoc, len(bundle.Shapes))
		for j, shape := range bundle.Shapes {
			topo := make([]topologyNodeDoc, shape.Size())
			for id := 0; id < shape.Size(); id++ {
				topo[id] = topologyNodeDoc{ID: id, Ports: shape.Neighbors(id)}
			}
			shapes[j] = shapeDoc{
				Name:     shape.Name,
				Size:     shape.Size(),
				MaxPorts: shape.MaxPorts(),
				Topology: topo,
			}
		}
		doc.Bundles[i] = bundleDoc{
			ID:     bundle.ID,
			Color:  [3]uint8{bundle.Color.R, bundle.Color.G, bundle.Color.B},
			Area:   bundle.TotalArea,
			Shapes: shapes,
		}
	}

	return doc
}

// fromDocument rebuilds a Puzzle from its on-disk form. The board's ports
// are rebuilt canonically from grid.type/width/height (board.New's wiring
// is deterministic for a given tessellation and size, so the persisted
// per-cell ports are a description, not a distinct input); shape topology,
// which has no such canonical form, is replayed exactly from the document.
func fromDocument(doc document) (*shapekit.Puzzle, error) {
	kind := board.Kind(doc.Grid.Type)
	if kind != board.Square && kind != board.Hexagon && kind != board.Triangle {
		return nil, ErrUnknownGridType
	}

	b, err := board.New(kind, doc.Grid.Width, doc.Grid.Height)
	if err != nil {
		return nil, errors.Wrap(err, "puzzleio: building board")
	}

	for _, cd := range doc.Cells {
		bundleID, figureID := board.EmptyTag, board.EmptyTag
		if cd.BundleID != nil {
			bundleID = *cd.BundleID
		}
		if cd.FigureID != nil {
			figureID = *cd.FigureID
		}
		b.SetTags(cd.ID, bundleID, figureID)
	}

	bundles := make([]*shapekit.Bundle, len(doc.Bundles))
	for i, bd := range doc.Bundles {
		shapes := make([]*shapekit.Shape, len(bd.Shapes))
		for j, sd := range bd.Shapes {
			g := topology.NewGraph(sd.MaxPorts)
			for n := 0; n < sd.Size; n++ {
				g.AddNode()
			}
			for _, node := range sd.Topology {
				for port, neighbor := range node.Ports {
					if neighbor == topology.Absent {
						continue
					}
					if err := g.AddDirectedEdge(node.ID, neighbor, port); err != nil {
						return nil, errors.Wrapf(err, "puzzleio: replaying topology for shape %q", sd.Name)
					}
				}
			}
			shapes[j] = shapekit.NewShape(sd.Name, g)
		}

		bundle := shapekit.NewBundle(bd.ID, shapes)
		bundle.Color.R, bundle.Color.G, bundle.Color.B = bd.Color[0], bd.Color[1], bd.Color[2]
		bundles[i] = bundle
	}

	return &shapekit.Puzzle{Board: b, Bundles: bundles}, nil
}

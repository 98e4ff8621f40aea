package generator

import (
	"fmt"
	"math/rand"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/colorscale"
	"github.com/gridforge/tilepuzzle/shapekit"
)

// materializeShapes converts each surviving region's cell list into a
// port-index-preserving Shape via topology.Graph.InducedSubgraph, and
// writes the assigned figure id back onto the board's cells.
func materializeShapes(shapes []tempShape, b *board.Board) []*shapekit.Shape {
	out := make([]*shapekit.Shape, len(shapes))
	for figureID, s := range shapes {
		sub := b.Graph.InducedSubgraph(s.cells)
		out[figureID] = shapekit.NewShape(fmt.Sprintf("S_%d", figureID), sub)

		for _, cid := range s.cells {
			c := b.Cell(cid)
			b.SetTags(cid, c.BundleID, figureID)
		}
	}
	return out
}

// shapeCells remembers, for each materialized shape, the board cells it
// occupies — needed by formBundles to stamp bundle_id onto the board
// without re-walking the shape's own graph (a Shape no longer carries
// board cell ids once materialized; it only knows its own 0..K-1 node ids).
type shapeCells struct {
	shape *shapekit.Shape
	cells []int
}

// formBundles shuffles the shapes, then walks the shuffled list
// accumulating shapes into the current bundle until it reaches a uniformly
// sampled target area, always keeping at least the first shape.
func formBundles(shapes []*shapekit.Shape, b *board.Board, cfg Config, rng *rand.Rand) []*shapekit.Bundle {
	// Recover each shape's board-cell footprint from the tags materializeShapes
	// wrote, since formBundles needs to stamp bundle_id back onto those cells.
	cellsByFigure := make([][]int, len(shapes))
	for id := 0; id < b.Size(); id++ {
		c := b.Cell(id)
		if c.FigureID >= 0 && c.FigureID < len(shapes) {
			cellsByFigure[c.FigureID] = append(cellsByFigure[c.FigureID], id)
		}
	}

	items := make([]shapeCells, len(shapes))
	for i, s := range shapes {
		items[i] = shapeCells{shape: s, cells: cellsByFigure[i]}
	}
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	var bundles []*shapekit.Bundle
	bundleID := 0
	idx := 0
	areaSpan := cfg.MaxBundleArea - cfg.MinBundleArea

	for idx < len(items) {
		targetArea := cfg.MinBundleArea
		if areaSpan > 0 {
			targetArea += rng.Intn(areaSpan + 1)
		}

		var group []*shapekit.Shape
		currentArea := 0
		for idx < len(items) {
			if currentArea > 0 && currentArea >= targetArea {
				break
			}
			item := items[idx]
			group = append(group, item.shape)
			currentArea += item.shape.Size()

			for _, cid := range item.cells {
				c := b.Cell(cid)
				b.SetTags(cid, bundleID, c.FigureID)
			}
			idx++
		}

		if len(group) == 0 {
			break
		}
		bundles = append(bundles, shapekit.NewBundle(bundleID, group))
		bundleID++
	}

	return bundles
}

// colourBundles maps each bundle's area-normalized position between the
// batch's min and max area onto the HSV heatmap ramp.
func colourBundles(bundles []*shapekit.Bundle) {
	if len(bundles) == 0 {
		return
	}

	minArea, maxArea := bundles[0].TotalArea, bundles[0].TotalArea
	for _, bd := range bundles {
		if bd.TotalArea < minArea {
			minArea = bd.TotalArea
		}
		if bd.TotalArea > maxArea {
			maxArea = bd.TotalArea
		}
	}

	for _, bd := range bundles {
		t := 0.0
		if maxArea > minArea {
			t = float64(bd.TotalArea-minArea) / float64(maxArea-minArea)
		}
		bd.Color = colorscale.Heatmap(t)
	}
}

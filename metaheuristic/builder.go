package metaheuristic

import (
	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/embedding"
	"github.com/gridforge/tilepuzzle/heuristic"
	"github.com/gridforge/tilepuzzle/occupancy"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

// allocation records which bundle and synthetic figure id a cell was given
// by a greedy build.
type allocation struct {
	bundleID, figureID int
}

// buildResult is the outcome of walking a full chromosome through the
// greedy builder: the fitness (the total area of fully placed bundles)
// and the cell allocations that produced it.
type buildResult struct {
	fitness int
	alloc   map[int]allocation
}

// build walks chromo's genes in order, greedily placing each bundle's
// shapes one at a time using that gene's heuristic to propose and score
// anchors. Bundles whose shapes can't all be placed are abandoned and
// rolled back; later genes still get their turn.
func build(b *board.Board, bundlesByID map[int]*shapekit.Bundle, chromo Chromosome) buildResult {
	mask := occupancy.New(b.Size())
	alloc := make(map[int]allocation)
	fitness := 0
	figureCounter := 0

	for _, gene := range chromo {
		bundle, ok := bundlesByID[gene.BundleID]
		if !ok {
			continue
		}

		var footprints [][]int
		ok = true
		for _, shape := range bundle.Shapes {
			fp := bestCandidate(b, mask, gene.Heuristic, shape)
			if fp == nil {
				ok = false
				break
			}
			mask.SetAll(fp)
			footprints = append(footprints, fp)
		}

		if !ok {
			for _, fp := range footprints {
				for _, cid := range fp {
					mask.Clear(cid)
				}
			}
			continue
		}

		for _, fp := range footprints {
			for _, cid := range fp {
				alloc[cid] = allocation{bundleID: bundle.ID, figureID: figureCounter}
			}
			figureCounter++
		}
		fitness += bundle.TotalArea
	}

	return buildResult{fitness: fitness, alloc: alloc}
}

// bestCandidate tries every candidate anchor and every rotation, returning
// the highest-scoring non-colliding footprint, or nil if none fits.
func bestCandidate(b *board.Board, mask occupancy.Mask, kind heuristic.Kind, shape *shapekit.Shape) []int {
	var best []int
	bestScore := 0.0
	found := false

	for _, anchor := range heuristic.Candidates(kind, b, mask) {
		for rot := 0; rot < b.MaxPorts(); rot++ {
			fp, err := embedding.Embed(b, anchor, shape, topology.Rotation(rot))
			if err != nil || mask.Collides(fp) {
				continue
			}
			score := heuristic.Evaluate(kind, b, mask, fp)
			if !found || score > bestScore {
				best = fp
				bestScore = score
				found = true
			}
		}
	}

	return best
}

func bundlesByID(bundles []*shapekit.Bundle) map[int]*shapekit.Bundle {
	out := make(map[int]*shapekit.Bundle, len(bundles))
	for _, b := range bundles {
		out[b.ID] = b
	}
	return out
}

// stamp writes alloc onto b's cell tags, turning a build's result into the
// board's actual solved state.
func stamp(b *board.Board, alloc map[int]allocation) {
	for cid, a := range alloc {
		b.SetTags(cid, a.bundleID, a.figureID)
	}
}

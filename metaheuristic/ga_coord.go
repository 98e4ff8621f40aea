package metaheuristic

import (
	"math/rand"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/embedding"
	"github.com/gridforge/tilepuzzle/occupancy"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

// GACoordinate is the order-free "sticky anchor" variant of the genetic
// algorithm: individuals are a bundle_id -> placed-shape-footprints map
// plus an occupied mask, not a permutation. It exists to cross-check
// solution quality against the permutation-based variants on sparse
// boards, where bundle order matters less than which cells end up sticky.
type GACoordinate struct {
	Config GAConfig
}

// coordIndividual is one GACoordinate population member.
type coordIndividual struct {
	footprints map[int][][]int // bundle id -> its shapes' footprints
	mask       occupancy.Mask
	fitness    int
}

func (ind coordIndividual) clone() coordIndividual {
	fp := make(map[int][][]int, len(ind.footprints))
	for id, shapes := range ind.footprints {
		fp[id] = append([][]int(nil), shapes...)
	}
	return coordIndividual{footprints: fp, mask: ind.mask.Clone(), fitness: ind.fitness}
}

// Solve evolves a population of coordinate individuals for Config.Generations
// generations, returning the fittest individual's allocation stamped onto b.
func (ga *GACoordinate) Solve(b *board.Board, bundles []*shapekit.Bundle) GAResult {
	seed := ga.Config.Seed
	if !ga.Config.Seeded {
		seed = newEntropySeed()
	}
	rng := rand.New(rand.NewSource(seed))
	byID := bundlesByID(bundles)

	population := make([]coordIndividual, ga.Config.PopulationSize)
	for i := range population {
		population[i] = randomCoordIndividual(b, bundles, rng)
	}

	best := population[0].clone()
	for _, ind := range population {
		if ind.fitness > best.fitness {
			best = ind.clone()
		}
	}

	for gen := 0; gen < ga.Config.Generations; gen++ {
		ranked := rankCoordByFitness(population)

		next := make([]coordIndividual, 0, len(population))
		for i := 0; i < ga.Config.Elitism && i < len(ranked); i++ {
			next = append(next, ranked[i].clone())
		}

		for len(next) < len(population) {
			a := tournamentSelectCoord(population, rng)
			b2 := tournamentSelectCoord(population, rng)
			child := coordCrossover(b, bundles, a, b2, rng)
			child = coordMutate(b, byID, bundles, child, rng)
			next = append(next, child)
		}

		population = next
		for _, ind := range population {
			if ind.fitness > best.fitness {
				best = ind.clone()
			}
		}
	}

	alloc := coordAlloc(best)
	stamp(b, alloc)
	return GAResult{BestFitness: best.fitness}
}

func coordAlloc(ind coordIndividual) map[int]allocation {
	alloc := make(map[int]allocation)
	figureCounter := 0
	for bundleID, shapes := range ind.footprints {
		for _, fp := range shapes {
			for _, cid := range fp {
				alloc[cid] = allocation{bundleID: bundleID, figureID: figureCounter}
			}
			figureCounter++
		}
	}
	return alloc
}

// randomCoordIndividual tries to add every bundle, in random order, via
// tryAddBundle.
func randomCoordIndividual(b *board.Board, bundles []*shapekit.Bundle, rng *rand.Rand) coordIndividual {
	order := append([]*shapekit.Bundle(nil), bundles...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	ind := coordIndividual{footprints: make(map[int][][]int), mask: occupancy.New(b.Size())}
	for _, bundle := range order {
		tryAddBundle(b, &ind, bundle, rng)
	}
	return ind
}

// tryAddBundle attempts to place every shape of bundle using sticky-anchor
// candidates, committing only if all shapes fit.
func tryAddBundle(b *board.Board, ind *coordIndividual, bundle *shapekit.Bundle, rng *rand.Rand) bool {
	if _, exists := ind.footprints[bundle.ID]; exists {
		return false
	}

	var footprints [][]int
	for _, shape := range bundle.Shapes {
		fp := findStickyPlacement(b, ind.mask, shape, rng)
		if fp == nil {
			for _, placed := range footprints {
				for _, cid := range placed {
					ind.mask.Clear(cid)
				}
			}
			return false
		}
		ind.mask.SetAll(fp)
		footprints = append(footprints, fp)
	}

	ind.footprints[bundle.ID] = footprints
	ind.fitness += bundle.TotalArea
	return true
}

// findStickyPlacement prefers empty cells neighboring already-placed cells,
// falling back to any empty cell when the mask is empty or the sticky set
// yields no fit.
func findStickyPlacement(b *board.Board, mask occupancy.Mask, shape *shapekit.Shape, rng *rand.Rand) []int {
	if fp := tryAnchors(b, mask, shape, stickyAnchors(b, mask), rng); fp != nil {
		return fp
	}
	return tryAnchors(b, mask, shape, allEmptyCells(b, mask), rng)
}

func stickyAnchors(b *board.Board, mask occupancy.Mask) []int {
	var out []int
	seen := make(map[int]bool)
	for id := 0; id < b.Size(); id++ {
		if !mask.Get(id) {
			continue
		}
		for p := 0; p < b.MaxPorts(); p++ {
			n := b.Neighbor(id, p)
			if n == topology.Absent || mask.Get(n) || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func allEmptyCells(b *board.Board, mask occupancy.Mask) []int {
	out := make([]int, 0, b.Size())
	for id := 0; id < b.Size(); id++ {
		if !mask.Get(id) {
			out = append(out, id)
		}
	}
	return out
}

func tryAnchors(b *board.Board, mask occupancy.Mask, shape *shapekit.Shape, anchors []int, rng *rand.Rand) []int {
	order := append([]int(nil), anchors...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, anchor := range order {
		for rot := 0; rot < b.MaxPorts(); rot++ {
			fp, err := embedding.Embed(b, anchor, shape, topology.Rotation(rot))
			if err != nil || mask.Collides(fp) {
				continue
			}
			return fp
		}
	}
	return nil
}

func rankCoordByFitness(population []coordIndividual) []coordIndividual {
	out := append([]coordIndividual(nil), population...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].fitness < out[j].fitness; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func tournamentSelectCoord(population []coordIndividual, rng *rand.Rand) coordIndividual {
	best := population[rng.Intn(len(population))]
	for i := 0; i < 2; i++ {
		c := population[rng.Intn(len(population))]
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best
}

// coordCrossover builds a child by reusing whichever parent's footprint for
// a bundle still fits in the child's mask, trying parent A first, then
// parent B, then placing fresh via tryAddBundle; bundle order is shuffled
// since the coordinate encoding carries no order of its own.
func coordCrossover(b *board.Board, bundles []*shapekit.Bundle, a, c coordIndividual, rng *rand.Rand) coordIndividual {
	order := append([]*shapekit.Bundle(nil), bundles...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	child := coordIndividual{footprints: make(map[int][][]int), mask: occupancy.New(b.Size())}
	for _, bundle := range order {
		if tryReuse(&child, a, bundle) || tryReuse(&child, c, bundle) {
			continue
		}
		tryAddBundle(b, &child, bundle, rng)
	}
	return child
}

func tryReuse(child *coordIndividual, parent coordIndividual, bundle *shapekit.Bundle) bool {
	shapes, ok := parent.footprints[bundle.ID]
	if !ok {
		return false
	}
	for _, fp := range shapes {
		if child.mask.Collides(fp) {
			return false
		}
	}
	for _, fp := range shapes {
		child.mask.SetAll(fp)
	}
	child.footprints[bundle.ID] = shapes
	child.fitness += bundle.TotalArea
	return true
}

// coordMutate with 30% probability drops one placed bundle and retries
// placing it fresh, and with 20% probability attempts to add one currently
// unplaced bundle.
func coordMutate(b *board.Board, byID map[int]*shapekit.Bundle, bundles []*shapekit.Bundle, ind coordIndividual, rng *rand.Rand) coordIndividual {
	out := ind.clone()

	if rng.Float64() < 0.3 && len(out.footprints) > 0 {
		ids := make([]int, 0, len(out.footprints))
		for id := range out.footprints {
			ids = append(ids, id)
		}
		victim := ids[rng.Intn(len(ids))]
		for _, fp := range out.footprints[victim] {
			for _, cid := range fp {
				out.mask.Clear(cid)
			}
		}
		out.fitness -= byID[victim].TotalArea
		delete(out.footprints, victim)
		tryAddBundle(b, &out, byID[victim], rng)
	}

	if rng.Float64() < 0.2 {
		for _, bundle := range bundles {
			if _, placed := out.footprints[bundle.ID]; !placed {
				tryAddBundle(b, &out, bundle, rng)
				break
			}
		}
	}

	return out
}

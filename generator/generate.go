package generator

import (
	"math/rand"
	"time"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/shapekit"
)

// tempShape is region-growing's working representation: a cell list plus
// its cached size, before it has been turned into a shapekit.Shape. Kept
// separate from shapekit.Shape because merge-smalls needs to mutate cell
// membership in place, and shapekit.Shape is meant to be immutable once
// built.
type tempShape struct {
	cells []int
}

// Generate runs region growing, small-region merging, materialization,
// bundling, and colouring in sequence, and returns a fully-tagged
// reference-solution Puzzle.
func Generate(cfg Config) (*shapekit.Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if !cfg.Seeded {
		seed = newEntropySeed()
	}
	rng := rand.New(rand.NewSource(seed))

	b, err := board.New(cfg.Kind, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	shapes := growAllRegions(b, cfg, rng)
	shapes = mergeSmallShapes(shapes, b, cfg.MinShapeSize, rng)
	materialized := materializeShapes(shapes, b)
	bundles := formBundles(materialized, b, cfg, rng)
	colourBundles(bundles)

	return &shapekit.Puzzle{Board: b, Bundles: bundles, Name: "Generated"}, nil
}

// newEntropySeed draws a non-deterministic seed when the caller doesn't
// supply one, following the teacher's own time.Now().UnixNano() idiom.
func newEntropySeed() int64 {
	return time.Now().UnixNano()
}

// growAllRegions repeatedly picks a free cell from the pool and grows a
// region from it until the pool is exhausted.
func growAllRegions(b *board.Board, cfg Config, rng *rand.Rand) []tempShape {
	n := b.Size()
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	free := make([]bool, n)
	for i := range free {
		free[i] = true
	}

	var shapes []tempShape
	for len(pool) > 0 {
		idx := rng.Intn(len(pool))
		start := pool[idx]
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		if !free[start] {
			continue
		}

		target := cfg.MinShapeSize
		if cfg.MaxShapeSize > cfg.MinShapeSize {
			target += rng.Intn(cfg.MaxShapeSize - cfg.MinShapeSize + 1)
		}

		cells := growRegion(b, start, target, free, rng)
		shapes = append(shapes, tempShape{cells: cells})
	}
	return shapes
}

// growRegion grows one connected region from start. frontier holds region
// cells that may still have unclaimed free neighbors, ordered by append
// time; "most recently added" is always frontier's last surviving entry,
// so once a cell is exhausted and removed from frontier, the 0.6 branch
// naturally falls back to the next most recent cell instead of looping
// forever on a dead end.
func growRegion(b *board.Board, start, target int, free []bool, rng *rand.Rand) []int {
	free[start] = false
	region := []int{start}
	inRegion := map[int]bool{start: true}
	frontier := []int{start}

	for len(region) < target && len(frontier) > 0 {
		var growFrom int
		if rng.Float64() < 0.6 {
			growFrom = frontier[len(frontier)-1]
		} else {
			growFrom = frontier[rng.Intn(len(frontier))]
		}

		var candidates []int
		for p := 0; p < b.MaxPorts(); p++ {
			nid := b.Neighbor(growFrom, p)
			if nid != -1 && free[nid] && !inRegion[nid] {
				candidates = append(candidates, nid)
			}
		}

		if len(candidates) == 0 {
			frontier = removeFirst(frontier, growFrom)
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		region = append(region, next)
		inRegion[next] = true
		frontier = append(frontier, next)
		free[next] = false
	}

	return region
}

func removeFirst(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// mergeSmallShapes absorbs every region smaller than minShapeSize into one
// uniformly chosen distinct neighboring region, in a single sweep.
func mergeSmallShapes(shapes []tempShape, b *board.Board, minShapeSize int, rng *rand.Rand) []tempShape {
	cellToShape := make([]int, b.Size())
	for i := range cellToShape {
		cellToShape[i] = -1
	}
	for i, s := range shapes {
		for _, cid := range s.cells {
			cellToShape[cid] = i
		}
	}

	for i := range shapes {
		if len(shapes[i].cells) == 0 || len(shapes[i].cells) >= minShapeSize {
			continue
		}

		neighborSet := map[int]bool{}
		for _, cid := range shapes[i].cells {
			for p := 0; p < b.MaxPorts(); p++ {
				n := b.Neighbor(cid, p)
				if n == -1 {
					continue
				}
				idx := cellToShape[n]
				if idx == -1 || idx == i || len(shapes[idx].cells) == 0 {
					continue
				}
				neighborSet[idx] = true
			}
		}
		if len(neighborSet) == 0 {
			continue
		}

		neighbors := make([]int, 0, len(neighborSet))
		for idx := range neighborSet {
			neighbors = append(neighbors, idx)
		}
		sortInts(neighbors)
		target := neighbors[rng.Intn(len(neighbors))]

		shapes[target].cells = append(shapes[target].cells, shapes[i].cells...)
		for _, cid := range shapes[i].cells {
			cellToShape[cid] = target
		}
		shapes[i].cells = nil
	}

	out := make([]tempShape, 0, len(shapes))
	for _, s := range shapes {
		if len(s.cells) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

package grasp

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/embedding"
	"github.com/gridforge/tilepuzzle/occupancy"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

// Config tunes the outer construction-phase loop and the per-candidate RCL
// width.
//
// Seed and Seeded together avoid a false ambiguity: Seed's zero value (0)
// is a perfectly legal seed, so a bare int64 field cannot distinguish
// "caller wants seed 0" from "caller didn't set a seed." Seeded makes that
// explicit — when false, Solve draws its own seed from a non-deterministic
// source, and callers that need reproducibility set Seeded: true.
type Config struct {
	MaxIterations int
	Alpha         float64
	TimeBudget    time.Duration
	Verbose       bool
	Seed          int64
	Seeded        bool
}

// Result is the best construction found across every iteration.
type Result struct {
	BestScore       int
	PlacedBundleIDs []int
}

// maxRCLBranching bounds the depth-branching factor of the per-bundle
// recursive placement — trying every candidate at every depth would make
// backtracking blow up combinatorially on anything but the smallest boards.
const maxRCLBranching = 5

// placement is one candidate (anchor, rotation) for the shape currently
// being placed, carrying its footprint and contact score.
type placement struct {
	footprint []int
	score     int
}

// allocation records which bundle and which synthetic figure id a cell was
// given by the best construction found.
type allocation struct {
	bundleID, figureID int
}

// Solve runs the GRASP outer loop: repeated randomized greedy constructions,
// keeping the best-scoring one, stamped onto p.Board at the end.
// The outer loop checks cfg.TimeBudget and ctx.Done() only between
// constructions, never mid-recursion, so a single construction always runs
// to completion once started.
func Solve(ctx context.Context, p *shapekit.Puzzle, cfg Config) (*Result, error) {
	seed := cfg.Seed
	if !cfg.Seeded {
		seed = newEntropySeed()
	}
	rng := rand.New(rand.NewSource(seed))

	order := orderBundles(p.Bundles)

	bestScore := -1
	var bestAlloc map[int]allocation
	var bestPlaced []int

	deadline := time.Time{}
	if cfg.TimeBudget > 0 {
		deadline = time.Now().Add(cfg.TimeBudget)
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		select {
		case <-ctx.Done():
			return finalize(p, bestScore, bestAlloc, bestPlaced), ctx.Err()
		default:
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		score, alloc, placed := constructionPhase(p.Board, order, cfg.Alpha, rng)
		if cfg.Verbose {
			log.Printf("grasp: iteration %d score %d", i, score)
		}
		if score > bestScore {
			bestScore = score
			bestAlloc = alloc
			bestPlaced = placed
		}
	}

	return finalize(p, bestScore, bestAlloc, bestPlaced), nil
}

func finalize(p *shapekit.Puzzle, bestScore int, alloc map[int]allocation, placed []int) *Result {
	if bestScore < 0 {
		bestScore = 0
	}
	for cid, a := range alloc {
		p.Board.SetTags(cid, a.bundleID, a.figureID)
	}
	sorted := append([]int(nil), placed...)
	sort.Ints(sorted)
	return &Result{BestScore: bestScore, PlacedBundleIDs: sorted}
}

// newEntropySeed draws a non-deterministic seed when the caller doesn't
// supply one, following the teacher's own time.Now().UnixNano() idiom.
func newEntropySeed() int64 {
	return time.Now().UnixNano()
}

// orderBundles sorts by (total_area desc, #shapes desc), ties broken by id
// for determinism — placing the hardest-to-fit bundles first gives the
// greedy construction its best shot at covering the board.
func orderBundles(bundles []*shapekit.Bundle) []*shapekit.Bundle {
	out := append([]*shapekit.Bundle(nil), bundles...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TotalArea != b.TotalArea {
			return a.TotalArea > b.TotalArea
		}
		if len(a.Shapes) != len(b.Shapes) {
			return len(a.Shapes) > len(b.Shapes)
		}
		return a.ID < b.ID
	})
	return out
}

// constructionPhase runs one randomized greedy construction over every
// bundle in order, committing a bundle's placements only if every one of
// its shapes could be placed — a bundle is all-or-nothing, never partially
// on the board.
func constructionPhase(b *board.Board, order []*shapekit.Bundle, alpha float64, rng *rand.Rand) (int, map[int]allocation, []int) {
	mask := occupancy.New(b.Size())
	alloc := make(map[int]allocation)
	var placed []int
	score := 0
	figureCounter := 0

	for _, bundle := range order {
		local := mask.Clone()
		var localPlacements [][]int

		if placeBundleShapes(b, bundle.Shapes, 0, local, &localPlacements, alpha, rng) {
			mask = local
			for _, fp := range localPlacements {
				for _, cid := range fp {
					alloc[cid] = allocation{bundleID: bundle.ID, figureID: figureCounter}
				}
				figureCounter++
			}
			placed = append(placed, bundle.ID)
			score += bundle.TotalArea
		}
	}

	return score, alloc, placed
}

// placeBundleShapes is the per-bundle recursive placement: enumerate all
// (anchor, rotation) pairs for shapes[idx], build an RCL, shuffle and try up
// to maxRCLBranching of them, recursing on success.
func placeBundleShapes(b *board.Board, shapes []*shapekit.Shape, idx int, mask occupancy.Mask, out *[][]int, alpha float64, rng *rand.Rand) bool {
	if idx == len(shapes) {
		return true
	}
	shape := shapes[idx]

	candidates := enumeratePlacements(b, shape, mask)
	if len(candidates) == 0 {
		return false
	}

	maxScore := candidates[0].score
	for _, c := range candidates[1:] {
		if c.score > maxScore {
			maxScore = c.score
		}
	}

	var rcl []placement
	for _, c := range candidates {
		if maxScore <= 0 || float64(c.score) >= alpha*float64(maxScore) {
			rcl = append(rcl, c)
		}
	}

	rng.Shuffle(len(rcl), func(i, j int) { rcl[i], rcl[j] = rcl[j], rcl[i] })
	tries := len(rcl)
	if tries > maxRCLBranching {
		tries = maxRCLBranching
	}

	// mask is mutated in place and threaded unchanged through the whole
	// recursion (its backing array is shared by every frame); each failed
	// branch clears exactly the cells it set, so a false return always
	// leaves mask exactly as this frame received it.
	for i := 0; i < tries; i++ {
		choice := rcl[i]
		mask.SetAll(choice.footprint)
		*out = append(*out, choice.footprint)

		if placeBundleShapes(b, shapes, idx+1, mask, out, alpha, rng) {
			return true
		}

		*out = (*out)[:len(*out)-1]
		for _, cid := range choice.footprint {
			mask.Clear(cid)
		}
	}

	return false
}

// enumeratePlacements tries every empty board cell as anchor and every
// rotation, dropping footprints that collide with mask, and scores
// survivors by 10*(#footprint cells with an occupied neighbor) — rewarding
// placements that hug already-placed pieces instead of scattering shapes
// across open space.
func enumeratePlacements(b *board.Board, shape *shapekit.Shape, mask occupancy.Mask) []placement {
	var out []placement
	for cid := 0; cid < b.Size(); cid++ {
		if mask.Get(cid) {
			continue
		}
		for rot := 0; rot < b.MaxPorts(); rot++ {
			fp, err := embedding.Embed(b, cid, shape, topology.Rotation(rot))
			if err != nil {
				continue
			}
			if mask.Collides(fp) {
				continue
			}
			out = append(out, placement{footprint: fp, score: contactScore(b, mask, fp)})
		}
	}
	return out
}

func contactScore(b *board.Board, mask occupancy.Mask, footprint []int) int {
	count := 0
	for _, id := range footprint {
		for p := 0; p < b.MaxPorts(); p++ {
			n := b.Neighbor(id, p)
			if n != topology.Absent && mask.Get(n) {
				count++
			}
		}
	}
	return 10 * count
}

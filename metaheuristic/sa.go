package metaheuristic

import (
	"math"
	"math/rand"
	"time"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/heuristic"
	"github.com/gridforge/tilepuzzle/shapekit"
)

// SAConfig tunes the simulated-annealing bundle-order optimizer.
//
// Seed and Seeded together avoid a false ambiguity: Seed's zero value (0)
// is a perfectly legal seed, so a bare int64 field cannot distinguish
// "caller wants seed 0" from "caller didn't set a seed." Seeded makes that
// explicit — when false, Solve draws its own seed from a non-deterministic
// source, and callers that need reproducibility set Seeded: true.
type SAConfig struct {
	InitialTemperature float64
	CoolingRate        float64
	MaxIterations      int
	Seed               int64
	Seeded             bool
}

// SA is a simulated-annealing solver over the shared chromosome
// representation: state = chromosome + cached fitness, energy = -fitness.
type SA struct {
	Config SAConfig
}

// SAResult is the best chromosome found and its fitness; Solve stamps the
// allocation that chromosome produced onto the board.
type SAResult struct {
	BestFitness int
	Chromosome  Chromosome
}

// Solve anneals from a randomly ordered chromosome, accepting worsening
// moves with Metropolis probability exp(-delta/T), cooling T every
// iteration, and stopping at MaxIterations or once energy reaches the
// board-size floor — no allocation can score below -board.Size(), so
// reaching that floor means every cell is covered and further iterations
// can only waste time.
func (sa *SA) Solve(b *board.Board, bundles []*shapekit.Bundle) SAResult {
	seed := sa.Config.Seed
	if !sa.Config.Seeded {
		seed = newEntropySeed()
	}
	rng := rand.New(rand.NewSource(seed))
	byID := bundlesByID(bundles)

	current := randomChromosome(bundles, rng)
	currentResult := build(b, byID, current)
	currentEnergy := -float64(currentResult.fitness)

	best := current.Clone()
	bestResult := currentResult

	temperature := sa.Config.InitialTemperature
	floor := -float64(b.Size())

	for i := 0; i < sa.Config.MaxIterations; i++ {
		if currentEnergy <= floor {
			break
		}

		candidate := neighbor(current, rng)
		candidateResult := build(b, byID, candidate)
		candidateEnergy := -float64(candidateResult.fitness)

		delta := candidateEnergy - currentEnergy
		if delta <= 0 || rng.Float64() < math.Exp(-delta/temperature) {
			current = candidate
			currentResult = candidateResult
			currentEnergy = candidateEnergy

			if candidateResult.fitness > bestResult.fitness {
				best = candidate.Clone()
				bestResult = candidateResult
			}
		}

		temperature *= sa.Config.CoolingRate
	}

	stamp(b, bestResult.alloc)
	return SAResult{BestFitness: bestResult.fitness, Chromosome: best}
}

// newEntropySeed draws a non-deterministic seed when the caller doesn't
// supply one, following the teacher's own time.Now().UnixNano() idiom.
func newEntropySeed() int64 {
	return time.Now().UnixNano()
}

// randomChromosome builds one gene per bundle in random order, each with a
// uniformly chosen heuristic kind.
func randomChromosome(bundles []*shapekit.Bundle, rng *rand.Rand) Chromosome {
	out := make(Chromosome, len(bundles))
	for i, b := range bundles {
		out[i] = Gene{BundleID: b.ID, Heuristic: randomKind(rng)}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func randomKind(rng *rand.Rand) heuristic.Kind {
	return heuristic.Kind(rng.Intn(4))
}

// neighbor perturbs c: 70% swap two genes' positions (changing bundle
// order), 30% randomize a single gene's heuristic kind.
func neighbor(c Chromosome, rng *rand.Rand) Chromosome {
	out := c.Clone()
	if len(out) == 0 {
		return out
	}

	if rng.Float64() < 0.7 {
		if len(out) < 2 {
			return out
		}
		i, j := rng.Intn(len(out)), rng.Intn(len(out))
		out[i], out[j] = out[j], out[i]
	} else {
		i := rng.Intn(len(out))
		out[i].Heuristic = randomKind(rng)
	}
	return out
}

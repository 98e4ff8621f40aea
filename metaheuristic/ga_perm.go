package metaheuristic

import (
	"math/rand"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/shapekit"
)

// GAConfig tunes both genetic-algorithm variants.
//
// Seed and Seeded together avoid a false ambiguity: Seed's zero value (0)
// is a perfectly legal seed, so a bare int64 field cannot distinguish
// "caller wants seed 0" from "caller didn't set a seed." Seeded makes that
// explicit — when false, Solve draws its own seed from a non-deterministic
// source, and callers that need reproducibility set Seeded: true.
type GAConfig struct {
	PopulationSize int
	Generations    int
	Elitism        int
	Seed           int64
	Seeded         bool
}

// GAPermutation is the permutation hyper-heuristic genetic algorithm:
// tournament-3 selection, order crossover, scramble + heuristic mutation,
// elitism.
type GAPermutation struct {
	Config GAConfig
}

// GAResult is the fittest chromosome found and its fitness; Solve stamps
// the matching allocation onto the board. GACoordinate leaves Chromosome
// nil, since its individuals are not chromosomes.
type GAResult struct {
	BestFitness int
	Chromosome  Chromosome
}

// Solve evolves a population of chromosomes for Config.Generations
// generations.
func (ga *GAPermutation) Solve(b *board.Board, bundles []*shapekit.Bundle) GAResult {
	seed := ga.Config.Seed
	if !ga.Config.Seeded {
		seed = newEntropySeed()
	}
	rng := rand.New(rand.NewSource(seed))
	byID := bundlesByID(bundles)

	population := make([]Chromosome, ga.Config.PopulationSize)
	for i := range population {
		population[i] = randomChromosome(bundles, rng)
	}

	var bestChromo Chromosome
	bestResult := buildResult{fitness: -1}

	for gen := 0; gen < ga.Config.Generations; gen++ {
		results := make([]buildResult, len(population))
		for i, c := range population {
			results[i] = build(b, byID, c)
			if results[i].fitness > bestResult.fitness {
				bestResult = results[i]
				bestChromo = population[i].Clone()
			}
		}

		population = nextGeneration(population, results, ga.Config, rng)
	}

	stamp(b, bestResult.alloc)
	return GAResult{BestFitness: bestResult.fitness, Chromosome: bestChromo}
}

// nextGeneration carries the top Elitism chromosomes over unchanged, then
// fills the rest via tournament selection, order crossover, and mutation.
func nextGeneration(population []Chromosome, results []buildResult, cfg GAConfig, rng *rand.Rand) []Chromosome {
	ranked := rankByFitness(population, results)

	next := make([]Chromosome, 0, len(population))
	for i := 0; i < cfg.Elitism && i < len(ranked); i++ {
		next = append(next, ranked[i].Clone())
	}

	for len(next) < len(population) {
		parentA := tournamentSelect(population, results, rng)
		parentB := tournamentSelect(population, results, rng)
		child := orderCrossover(parentA, parentB, rng)
		child = mutate(child, rng)
		next = append(next, child)
	}

	return next
}

func rankByFitness(population []Chromosome, results []buildResult) []Chromosome {
	idx := make([]int, len(population))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && results[idx[j-1]].fitness < results[idx[j]].fitness; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	out := make([]Chromosome, len(idx))
	for i, id := range idx {
		out[i] = population[id]
	}
	return out
}

// tournamentSelect runs a size-3 tournament and returns the fittest entrant.
func tournamentSelect(population []Chromosome, results []buildResult, rng *rand.Rand) Chromosome {
	best := rng.Intn(len(population))
	for i := 0; i < 2; i++ {
		c := rng.Intn(len(population))
		if results[c].fitness > results[best].fitness {
			best = c
		}
	}
	return population[best]
}

// orderCrossover picks a contiguous slice from parentA, then fills the rest
// in parentB's order, skipping bundle ids already used.
func orderCrossover(parentA, parentB Chromosome, rng *rand.Rand) Chromosome {
	n := len(parentA)
	if n == 0 {
		return Chromosome{}
	}
	i, j := rng.Intn(n), rng.Intn(n)
	if i > j {
		i, j = j, i
	}

	child := make(Chromosome, n)
	used := make(map[int]bool, n)
	for k := i; k <= j; k++ {
		child[k] = parentA[k]
		used[parentA[k].BundleID] = true
	}

	pos := (j + 1) % n
	for _, gene := range parentB {
		if used[gene.BundleID] {
			continue
		}
		child[pos] = gene
		used[gene.BundleID] = true
		pos = (pos + 1) % n
	}

	return child
}

// mutate applies independent 70% scramble-sub-range and 50%
// resample-one-heuristic mutations.
func mutate(c Chromosome, rng *rand.Rand) Chromosome {
	out := c.Clone()

	if rng.Float64() < 0.7 && len(out) > 1 {
		i, j := rng.Intn(len(out)), rng.Intn(len(out))
		if i > j {
			i, j = j, i
		}
		rng.Shuffle(j-i+1, func(a, b int) {
			out[i+a], out[i+b] = out[i+b], out[i+a]
		})
	}

	if rng.Float64() < 0.5 && len(out) > 0 {
		k := rng.Intn(len(out))
		out[k].Heuristic = randomKind(rng)
	}

	return out
}

package metaheuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/generator"
	"github.com/gridforge/tilepuzzle/metaheuristic"
)

func TestSA_ProducesNonNegativeFitness(t *testing.T) {
	p, err := generator.Generate(generator.Config{
		Kind: board.Square, Width: 5, Height: 5,
		MinShapeSize: 2, MaxShapeSize: 4,
		MinBundleArea: 4, MaxBundleArea: 10,
		Seed: 55, Seeded: true,
	})
	require.NoError(t, err)
	p.Board.ClearTags()

	sa := &metaheuristic.SA{Config: metaheuristic.SAConfig{
		InitialTemperature: 100, CoolingRate: 0.95, MaxIterations: 30, Seed: 1, Seeded: true,
	}}
	res := sa.Solve(p.Board, p.Bundles)
	assert.GreaterOrEqual(t, res.BestFitness, 0)
	assert.LessOrEqual(t, res.BestFitness, p.Board.Size())
}

func TestGAPermutation_ProducesNonNegativeFitness(t *testing.T) {
	p, err := generator.Generate(generator.Config{
		Kind: board.Square, Width: 5, Height: 5,
		MinShapeSize: 2, MaxShapeSize: 4,
		MinBundleArea: 4, MaxBundleArea: 10,
		Seed: 56, Seeded: true,
	})
	require.NoError(t, err)
	p.Board.ClearTags()

	ga := &metaheuristic.GAPermutation{Config: metaheuristic.GAConfig{
		PopulationSize: 10, Generations: 5, Elitism: 2, Seed: 2, Seeded: true,
	}}
	res := ga.Solve(p.Board, p.Bundles)
	assert.GreaterOrEqual(t, res.BestFitness, 0)
	assert.LessOrEqual(t, res.BestFitness, p.Board.Size())
}

func TestGACoordinate_ProducesNonNegativeFitness(t *testing.T) {
	p, err := generator.Generate(generator.Config{
		Kind: board.Square, Width: 5, Height: 5,
		MinShapeSize: 2, MaxShapeSize: 4,
		MinBundleArea: 4, MaxBundleArea: 10,
		Seed: 57, Seeded: true,
	})
	require.NoError(t, err)
	p.Board.ClearTags()

	ga := &metaheuristic.GACoordinate{Config: metaheuristic.GAConfig{
		PopulationSize: 10, Generations: 5, Elitism: 2, Seed: 3, Seeded: true,
	}}
	res := ga.Solve(p.Board, p.Bundles)
	assert.GreaterOrEqual(t, res.BestFitness, 0)
	assert.LessOrEqual(t, res.BestFitness, p.Board.Size())
}

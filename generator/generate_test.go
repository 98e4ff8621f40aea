package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/generator"
)

func TestGenerate_UniformBundleArea(t *testing.T) {
	cfg := generator.Config{
		Kind: board.Square, Width: 4, Height: 4,
		MinShapeSize: 2, MaxShapeSize: 2,
		MinBundleArea: 4, MaxBundleArea: 4,
		Seed: 42, Seeded: true,
	}
	p, err := generator.Generate(cfg)
	require.NoError(t, err)

	assert.Len(t, p.Bundles, 4)
	for _, b := range p.Bundles {
		assert.Equal(t, 4, b.TotalArea)
	}
}

func TestGenerate_EveryCellTaggedAndAreaCoversBoard(t *testing.T) {
	cfg := generator.Config{
		Kind: board.Hexagon, Width: 6, Height: 5,
		MinShapeSize: 2, MaxShapeSize: 5,
		MinBundleArea: 3, MaxBundleArea: 10,
		Seed: 7, Seeded: true,
	}
	p, err := generator.Generate(cfg)
	require.NoError(t, err)

	require.NoError(t, p.Validate())

	totalArea := 0
	for _, bd := range p.Bundles {
		totalArea += bd.TotalArea
	}
	assert.Equal(t, cfg.Width*cfg.Height, totalArea)

	for id := 0; id < p.Board.Size(); id++ {
		c := p.Board.Cell(id)
		assert.GreaterOrEqual(t, c.BundleID, 0)
		assert.GreaterOrEqual(t, c.FigureID, 0)
	}
}

func TestGenerate_ShapesAreConnected(t *testing.T) {
	cfg := generator.Config{
		Kind: board.Square, Width: 8, Height: 8,
		MinShapeSize: 3, MaxShapeSize: 6,
		MinBundleArea: 6, MaxBundleArea: 15,
		Seed: 99, Seeded: true,
	}
	p, err := generator.Generate(cfg)
	require.NoError(t, err)

	for _, bd := range p.Bundles {
		for _, shape := range bd.Shapes {
			assert.True(t, isConnected(shape), "shape %s must be a single connected component", shape.Name)
			assert.GreaterOrEqual(t, shape.Size(), cfg.MinShapeSize)
		}
	}
}

func isConnected(shape interface {
	Size() int
	Neighbor(u, p int) int
	MaxPorts() int
}) bool {
	n := shape.Size()
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	queue := []int{0}
	visited[0] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for p := 0; p < shape.MaxPorts(); p++ {
			v := shape.Neighbor(u, p)
			if v != -1 && !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	for _, v := range visited {
		if !v {
			return false
		}
	}
	return true
}

func TestGenerate_DeterministicWithSameSeed(t *testing.T) {
	cfg := generator.Config{
		Kind: board.Square, Width: 5, Height: 5,
		MinShapeSize: 2, MaxShapeSize: 4,
		MinBundleArea: 4, MaxBundleArea: 10,
		Seed: 123, Seeded: true,
	}
	p1, err := generator.Generate(cfg)
	require.NoError(t, err)
	p2, err := generator.Generate(cfg)
	require.NoError(t, err)

	require.Equal(t, len(p1.Bundles), len(p2.Bundles))
	for id := 0; id < p1.Board.Size(); id++ {
		assert.Equal(t, p1.Board.Cell(id).FigureID, p2.Board.Cell(id).FigureID)
	}
}

func TestGenerate_RejectsBadConfig(t *testing.T) {
	_, err := generator.Generate(generator.Config{Kind: board.Square, Width: 0, Height: 4})
	assert.ErrorIs(t, err, generator.ErrBadConfig)
}

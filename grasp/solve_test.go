package grasp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/grasp"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

func threeInARowBundle(t *testing.T) *shapekit.Bundle {
	t.Helper()
	g := topology.NewGraph(4)
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	require.NoError(t, g.AddEdge(a, b, 1, 3))
	require.NoError(t, g.AddEdge(b, c, 1, 3))
	shape := shapekit.NewShape("I3", g)
	return shapekit.NewBundle(0, []*shapekit.Shape{shape})
}

func lTrominoBundle(t *testing.T) *shapekit.Bundle {
	t.Helper()
	g := topology.NewGraph(4)
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	require.NoError(t, g.AddEdge(a, b, 1, 3))
	require.NoError(t, g.AddEdge(b, c, 2, 0))
	shape := shapekit.NewShape("L3", g)
	return shapekit.NewBundle(0, []*shapekit.Shape{shape})
}

func TestSolve_ThreeInARowScoresThree(t *testing.T) {
	brd, err := board.New(board.Square, 3, 1)
	require.NoError(t, err)
	p := &shapekit.Puzzle{Board: brd, Bundles: []*shapekit.Bundle{threeInARowBundle(t)}}

	res, err := grasp.Solve(context.Background(), p, grasp.Config{MaxIterations: 5, Alpha: 1.0, Seed: 1, Seeded: true})
	require.NoError(t, err)

	assert.Equal(t, 3, res.BestScore)
	assert.Equal(t, []int{0}, res.PlacedBundleIDs)
	for id := 0; id < 3; id++ {
		assert.NotEqual(t, board.EmptyTag, brd.Cell(id).BundleID)
	}
}

func TestSolve_SecondLTrominoIsSkipped(t *testing.T) {
	brd, err := board.New(board.Square, 2, 2)
	require.NoError(t, err)
	bundle := lTrominoBundle(t)
	p := &shapekit.Puzzle{Board: brd, Bundles: []*shapekit.Bundle{bundle, shapekit.NewBundle(1, bundle.Shapes)}}

	res, err := grasp.Solve(context.Background(), p, grasp.Config{MaxIterations: 10, Alpha: 1.0, Seed: 2, Seeded: true})
	require.NoError(t, err)

	assert.Equal(t, 3, res.BestScore)
	assert.Len(t, res.PlacedBundleIDs, 1)
}

func TestSolve_DeterministicWithSameSeed(t *testing.T) {
	brd1, err := board.New(board.Square, 4, 4)
	require.NoError(t, err)
	brd2, err := board.New(board.Square, 4, 4)
	require.NoError(t, err)

	bundle1 := lTrominoBundle(t)
	bundle2 := lTrominoBundle(t)
	p1 := &shapekit.Puzzle{Board: brd1, Bundles: []*shapekit.Bundle{bundle1}}
	p2 := &shapekit.Puzzle{Board: brd2, Bundles: []*shapekit.Bundle{bundle2}}

	cfg := grasp.Config{MaxIterations: 20, Alpha: 0.5, Seed: 777, Seeded: true}
	res1, err := grasp.Solve(context.Background(), p1, cfg)
	require.NoError(t, err)
	res2, err := grasp.Solve(context.Background(), p2, cfg)
	require.NoError(t, err)

	assert.Equal(t, res1.BestScore, res2.BestScore)
}

func TestSolve_RespectsCancelledContext(t *testing.T) {
	brd, err := board.New(board.Square, 4, 4)
	require.NoError(t, err)
	p := &shapekit.Puzzle{Board: brd, Bundles: []*shapekit.Bundle{lTrominoBundle(t)}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := grasp.Solve(ctx, p, grasp.Config{MaxIterations: 100, Alpha: 1.0, Seed: 3, Seeded: true})
	assert.Error(t, err)
	assert.NotNil(t, res)
}

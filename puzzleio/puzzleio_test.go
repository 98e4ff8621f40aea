package puzzleio_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/puzzleio"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

func twoCellBundle(t *testing.T) *shapekit.Bundle {
	t.Helper()
	g := topology.NewGraph(4)
	a := g.AddNode()
	b := g.AddNode()
	require.NoError(t, g.AddEdge(a, b, 1, 3))
	return shapekit.NewBundle(0, []*shapekit.Shape{shapekit.NewShape("S_0", g)})
}

func TestSaveLoad_RoundTripIdempotent(t *testing.T) {
	b, err := board.New(board.Square, 2, 1)
	require.NoError(t, err)
	b.SetTags(0, 0, 0)
	b.SetTags(1, 0, 1)

	p := &shapekit.Puzzle{Board: b, Bundles: []*shapekit.Bundle{twoCellBundle(t)}}

	path := filepath.Join(t.TempDir(), "puzzle.json")
	require.NoError(t, puzzleio.Save(path, p))

	loaded, err := puzzleio.Load(path)
	require.NoError(t, err)

	path2 := filepath.Join(t.TempDir(), "puzzle2.json")
	require.NoError(t, puzzleio.Save(path2, loaded))

	raw1, err := os.ReadFile(path)
	require.NoError(t, err)
	raw2, err := os.ReadFile(path2)
	require.NoError(t, err)

	var decoded1, decoded2 map[string]interface{}
	require.NoError(t, json.Unmarshal(raw1, &decoded1))
	require.NoError(t, json.Unmarshal(raw2, &decoded2))
	assert.Equal(t, decoded1, decoded2)

	assert.Equal(t, 0, loaded.Board.Cell(0).BundleID)
	assert.Equal(t, 1, loaded.Board.Cell(1).FigureID)
	require.Len(t, loaded.Bundles, 1)
	require.Len(t, loaded.Bundles[0].Shapes, 1)
	assert.Equal(t, 2, loaded.Bundles[0].Shapes[0].Size())
	assert.Equal(t, 1, loaded.Bundles[0].Shapes[0].Neighbor(0, 1))
}

func TestLoad_AcceptsLegacyNeighborsKeyAndMissingTags(t *testing.T) {
	raw := `{
		"grid": {"width": 1, "height": 1, "type": 0, "max_ports": 4},
		"cells": [{"id": 0, "x": 0, "y": 0, "neighbors": [-1, -1, -1, -1]}],
		"bundles": []
	}`
	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	p, err := puzzleio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, board.EmptyTag, p.Board.Cell(0).BundleID)
	assert.Equal(t, board.EmptyTag, p.Board.Cell(0).FigureID)
}

func TestLoad_RejectsUnknownGridType(t *testing.T) {
	raw := `{"grid": {"width": 1, "height": 1, "type": 9, "max_ports": 4}, "cells": [], "bundles": []}`
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := puzzleio.Load(path)
	assert.ErrorIs(t, err, puzzleio.ErrUnknownGridType)
}

func TestSave_RefusesInconsistentPuzzle(t *testing.T) {
	b, err := board.New(board.Square, 1, 1)
	require.NoError(t, err)
	b.SetTags(0, 3, board.EmptyTag)
	p := &shapekit.Puzzle{Board: b}

	err = puzzleio.Save(filepath.Join(t.TempDir(), "x.json"), p)
	assert.ErrorIs(t, err, shapekit.ErrTagInconsistent)
}

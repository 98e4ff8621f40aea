package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tilepuzzle/topology"
)

func TestAddEdge_Symmetric(t *testing.T) {
	g := topology.NewGraph(4)
	a := g.AddNode()
	b := g.AddNode()

	require.NoError(t, g.AddEdge(a, b, 1, 3))

	assert.Equal(t, b, g.Neighbor(a, 1))
	assert.Equal(t, a, g.Neighbor(b, 3))
	assert.Equal(t, topology.Absent, g.Neighbor(a, 0))
}

func TestNeighbor_OutOfRangePortIsAbsent(t *testing.T) {
	g := topology.NewGraph(3)
	a := g.AddNode()

	// Port >= MaxPorts must resolve to Absent, not panic: the embedding
	// primitive relies on this when a rotation pushes a port past a
	// triangle board's arity.
	assert.Equal(t, topology.Absent, g.Neighbor(a, 5))
	assert.Equal(t, topology.Absent, g.Neighbor(a, -1))
	assert.Equal(t, topology.Absent, g.Neighbor(42, 0))
}

func TestAddDirectedEdge_RejectsBadPort(t *testing.T) {
	g := topology.NewGraph(4)
	a := g.AddNode()
	b := g.AddNode()

	err := g.AddDirectedEdge(a, b, 7)
	assert.ErrorIs(t, err, topology.ErrPortOutOfRange)
}

func TestAddDirectedEdge_RejectsBadNode(t *testing.T) {
	g := topology.NewGraph(4)
	a := g.AddNode()

	err := g.AddDirectedEdge(a, 99, 0)
	assert.ErrorIs(t, err, topology.ErrNodeOutOfRange)
}

func TestInducedSubgraph_PreservesPortIndices(t *testing.T) {
	// A 1x3 strip of a square board: 0-1-2 along port 1 (east) / port 3 (west).
	g := topology.NewGraph(4)
	n0 := g.AddNode()
	n1 := g.AddNode()
	n2 := g.AddNode()
	require.NoError(t, g.AddEdge(n0, n1, 1, 3))
	require.NoError(t, g.AddEdge(n1, n2, 1, 3))

	sub := g.InducedSubgraph([]int{n0, n1, n2})

	require.Equal(t, 3, sub.Size())
	assert.Equal(t, 1, sub.Neighbor(0, 1)) // still east-port, now shape-local id 1
	assert.Equal(t, 0, sub.Neighbor(1, 3))
	assert.Equal(t, 2, sub.Neighbor(1, 1))
	assert.Equal(t, topology.Absent, sub.Neighbor(2, 1))
}

func TestClone_Independent(t *testing.T) {
	g := topology.NewGraph(4)
	a := g.AddNode()
	b := g.AddNode()
	require.NoError(t, g.AddEdge(a, b, 1, 3))

	clone := g.Clone()
	require.NoError(t, g.AddDirectedEdge(a, b, 0))

	assert.Equal(t, topology.Absent, clone.Neighbor(a, 0))
}

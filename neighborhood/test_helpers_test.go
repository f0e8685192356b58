// SPDX-License-Identifier: MIT
// Package neighborhood_test contains fixtures shared by the neighborhood tests.
package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vicinity/neighborhood"
)

// Fixed seed for registry hash parameters across tests.
const testSeed = 42

// triangleVertices is the round-trip fixture {(1,3), (2,4), (3,1)}.
func triangleVertices() []neighborhood.Vertex {
	return []neighborhood.Vertex{{ID: 1, Weight: 3}, {ID: 2, Weight: 4}, {ID: 3, Weight: 1}}
}

// firstTestVertices is the ten-vertex demo graph.
func firstTestVertices() []neighborhood.Vertex {
	return []neighborhood.Vertex{
		{ID: 1, Weight: 3}, {ID: 2, Weight: 4}, {ID: 3, Weight: 1}, {ID: 4, Weight: 1}, {ID: 5, Weight: 1},
		{ID: 6, Weight: 9}, {ID: 7, Weight: 15}, {ID: 8, Weight: 6}, {ID: 9, Weight: 111}, {ID: 10, Weight: 2},
	}
}

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, vs []neighborhood.Vertex, opts ...neighborhood.GraphOption) *neighborhood.Graph {
	t.Helper()
	g, err := neighborhood.New(vs, append([]neighborhood.GraphOption{neighborhood.WithSeed(testSeed)}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

// mustNW asserts the neighborhood weight of id.
func mustNW(t testing.TB, g *neighborhood.Graph, id, want int64) {
	t.Helper()
	got, ok := g.NeighborhoodWeight(id)
	require.True(t, ok, "NeighborhoodWeight(%d) not found", id)
	require.Equal(t, want, got, "NeighborhoodWeight(%d)", id)
}

// snapshot captures everything observable about g for no-change assertions.
type snapshot struct {
	nodes []neighborhood.Node
	edges int
	count int
	max   neighborhood.Node
	hasMx bool
}

func takeSnapshot(g *neighborhood.Graph) snapshot {
	mx, ok := g.MaxNeighborhoodWeight()
	return snapshot{nodes: g.Nodes(), edges: g.EdgeCount(), count: g.NodeCount(), max: mx, hasMx: ok}
}

// SPDX-License-Identifier: MIT
package neighborhood_test

import (
	"fmt"

	"github.com/katalvlaran/vicinity/neighborhood"
)

// ExampleGraph demonstrates edge insertion, the running maximum and deletion.
func ExampleGraph() {
	// 1) Fixed vertex set, no edges yet.
	g, err := neighborhood.New([]neighborhood.Vertex{
		{ID: 1, Weight: 3},
		{ID: 2, Weight: 4},
		{ID: 3, Weight: 1},
	}, neighborhood.WithSeed(1))
	if err != nil {
		panic(err)
	}

	// 2) Connect 1-2 and 1-3.
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	top, _ := g.MaxNeighborhoodWeight()
	fmt.Println("max:", top.ID, top.NeighborhoodWeight)

	// 3) Deleting 1 drops both edges.
	g.DeleteNode(1)
	top, _ = g.MaxNeighborhoodWeight()
	fmt.Println("max:", top.ID, top.NeighborhoodWeight)
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())

	// Output:
	// max: 1 8
	// max: 2 4
	// nodes: 2 edges: 0
}

// ExampleGraph_String prints one line per vertex.
func ExampleGraph_String() {
	g, _ := neighborhood.New([]neighborhood.Vertex{{ID: 9, Weight: 111}, {ID: 10, Weight: 2}, {ID: 1, Weight: 3}})
	g.AddEdge(9, 10)
	g.AddEdge(9, 1)
	fmt.Print(g)

	// Output:
	// 1 w=3 nw=114 [9]
	// 9 w=111 nw=116 [10 1]
	// 10 w=2 nw=113 [9]
}

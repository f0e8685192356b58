// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/vicinity/builder"
	"github.com/katalvlaran/vicinity/neighborhood"
)

// ExampleBuildGraph builds a weighted path and reports its heaviest neighborhood.
func ExampleBuildGraph() {
	vs, _ := builder.Vertices(4, builder.WithIDScheme(func(i int) int64 { return int64(i + 1) }))
	vs[0].Weight = 5

	g, edges, err := builder.BuildGraph(vs, []neighborhood.GraphOption{neighborhood.WithSeed(1)}, nil, builder.Path())
	if err != nil {
		fmt.Println(err)
		return
	}
	top, _ := g.MaxNeighborhoodWeight()
	fmt.Println(len(edges), top.ID, top.NeighborhoodWeight)
	// Output: 3 2 7
}

// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// impl_topology.go - deterministic topologies: Complete, Star, Path, Cycle.
// Vertex order is the order of the ids slice; index 0 is the star center.

package builder

// Method names used in error prefixes.
const (
	MethodComplete = "Complete"
	MethodStar     = "Star"
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
)

// Minimum vertex counts per topology.
const (
	minStarVertices  = 1
	minCycleVertices = 3
)

// Complete emits every unordered pair {i, j}, i < j, in ascending (i, j) order.
// Complexity: O(n²).
func Complete() Constructor {
	return func(ids []int64, _ builderConfig) ([]Edge, error) {
		n := len(ids)
		out := make([]Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				out = append(out, Edge{U: ids[i], V: ids[j]})
			}
		}
		return out, nil
	}
}

// Star connects ids[0] to every other id.
func Star() Constructor {
	return func(ids []int64, _ builderConfig) ([]Edge, error) {
		if len(ids) < minStarVertices {
			return nil, builderErrorf(MethodStar, ErrTooFewVertices, "n=%d < min=%d", len(ids), minStarVertices)
		}
		out := make([]Edge, 0, len(ids)-1)
		for _, id := range ids[1:] {
			out = append(out, Edge{U: ids[0], V: id})
		}
		return out, nil
	}
}

// Path connects consecutive ids. Zero or one vertex yields no edges.
func Path() Constructor {
	return func(ids []int64, _ builderConfig) ([]Edge, error) {
		if len(ids) < 2 {
			return nil, nil
		}
		out := make([]Edge, 0, len(ids)-1)
		for i := 1; i < len(ids); i++ {
			out = append(out, Edge{U: ids[i-1], V: ids[i]})
		}
		return out, nil
	}
}

// Cycle is Path plus the closing edge; it needs at least three vertices.
func Cycle() Constructor {
	return func(ids []int64, cfg builderConfig) ([]Edge, error) {
		if len(ids) < minCycleVertices {
			return nil, builderErrorf(MethodCycle, ErrTooFewVertices, "n=%d < min=%d", len(ids), minCycleVertices)
		}
		out, _ := Path()(ids, cfg)
		return append(out, Edge{U: ids[len(ids)-1], V: ids[0]}), nil
	}
}

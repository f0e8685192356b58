// SPDX-License-Identifier: MIT
// Package: vicinity/neighborhood
//
// queries.go - read-only accessors.

package neighborhood

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/vicinity/adjacency"
)

// MaxNeighborhoodWeight returns the live vertex with the largest neighborhood
// weight, or false when the graph is empty. Ties resolve to whichever vertex
// the heap holds at its root.
// Complexity: O(1).
func (g *Graph) MaxNeighborhoodWeight() (Node, bool) {
	hd, ok := g.heap.Peek()
	if !ok {
		return Node{}, false
	}
	return g.node(g.heap.Payload(hd)), true
}

// NeighborhoodWeight returns the neighborhood weight of id.
// Complexity: O(1) expected.
func (g *Graph) NeighborhoodWeight(id int64) (int64, bool) {
	i, ok := g.index.Lookup(id)
	if !ok {
		return 0, false
	}
	return g.verts[i].nw, true
}

// Node returns a snapshot of id.
func (g *Graph) Node(id int64) (Node, bool) {
	i, ok := g.index.Lookup(id)
	if !ok {
		return Node{}, false
	}
	return g.node(i), true
}

// HasNode reports whether id is live.
func (g *Graph) HasNode(id int64) bool { return g.index.Contains(id) }

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id int64) (int, bool) {
	i, ok := g.index.Lookup(id)
	if !ok {
		return 0, false
	}
	return g.adj.Len(adjacency.ListID(i)), true
}

// Neighbors returns the ids adjacent to id in edge insertion order.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int64) ([]int64, bool) {
	i, ok := g.index.Lookup(id)
	if !ok {
		return nil, false
	}
	out := make([]int64, 0, g.adj.Len(adjacency.ListID(i)))
	g.adj.Each(adjacency.ListID(i), func(_ adjacency.EntryID, nbr int32) bool {
		out = append(out, g.verts[nbr].id)
		return true
	})

	return out, true
}

// NodeCount returns the number of live vertices.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return g.heap.Len() }

// EdgeCount returns the number of live edges by summing every live vertex's
// adjacency length and halving the total.
// Complexity: O(n) over the construction-time vertex count.
func (g *Graph) EdgeCount() int {
	sum := 0
	for i := range g.verts {
		if g.verts[i].alive {
			sum += g.adj.Len(adjacency.ListID(i))
		}
	}
	return sum / 2
}

// IsEmpty reports whether every vertex has been deleted (or none were given).
func (g *Graph) IsEmpty() bool { return g.heap.Len() == 0 }

// Nodes returns snapshots of every live vertex sorted by id.
// Complexity: O(n log n).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.heap.Len())
	for i := range g.verts {
		if g.verts[i].alive {
			out = append(out, g.node(int32(i)))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })

	return out
}

// String renders one line per live vertex, sorted by id:
//
//	1 w=3 nw=8 [2 3]
func (g *Graph) String() string {
	var sb strings.Builder
	for _, n := range g.Nodes() {
		nbrs, _ := g.Neighbors(n.ID)
		fmt.Fprintf(&sb, "%d w=%d nw=%d %v\n", n.ID, n.Weight, n.NeighborhoodWeight, nbrs)
	}
	return sb.String()
}

func (g *Graph) node(i int32) Node {
	v := g.verts[i]
	return Node{
		ID:                 v.id,
		Weight:             v.weight,
		NeighborhoodWeight: v.nw,
		Degree:             g.adj.Len(adjacency.ListID(i)),
	}
}

// SPDX-License-Identifier: MIT
// Package: vicinity/neighborhood
//
// graph.go - construction and the two mutations (AddEdge, DeleteNode).

package neighborhood

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vicinity/adjacency"
	"github.com/katalvlaran/vicinity/maxheap"
	"github.com/katalvlaran/vicinity/registry"
)

// New builds a Graph over vertices with no edges. Every vertex starts with
// neighborhood weight equal to its own weight.
//
// Errors:
//   - ErrDuplicateID if two vertices share an id.
//   - ErrTooManyVertices if len(vertices) exceeds the int32 index space.
//
// Complexity: O(n) time and space.
func New(vertices []Vertex, opts ...GraphOption) (*Graph, error) {
	n := len(vertices)
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}

	g := &Graph{verts: make([]vertex, n)}
	for _, opt := range opts {
		opt(g)
	}
	g.heap = maxheap.New[int32](n)
	g.index = registry.New[int32](n, g.regOpts...)
	g.adj = adjacency.NewStore(n)

	for i, v := range vertices {
		reg, err := g.index.Insert(v.ID, int32(i))
		if err != nil {
			return nil, fmt.Errorf("%w: id %d at position %d", ErrDuplicateID, v.ID, i)
		}
		// Capacity equals n, so the heap cannot be full here.
		hp, err := g.heap.Insert(v.Weight, int32(i))
		if err != nil {
			return nil, fmt.Errorf("neighborhood: New: %w", err)
		}
		g.verts[i] = vertex{id: v.ID, weight: v.Weight, nw: v.Weight, heap: hp, reg: reg, alive: true}
	}

	return g, nil
}

// AddEdge connects id1 and id2.
//
// It returns false and changes nothing when either id is absent or id1 == id2
// (and, under WithEdgeChecks, when the edge already exists). Otherwise:
//  1. one adjacency entry is appended to each endpoint's list, referencing the other;
//  2. the two entries are linked as twins;
//  3. each endpoint's neighborhood weight grows by the other's weight;
//  4. both heap keys are updated.
//
// Complexity: O(log n); O(min(deg) + log n) under WithEdgeChecks.
func (g *Graph) AddEdge(id1, id2 int64) bool {
	if id1 == id2 {
		return false
	}
	i, ok := g.index.Lookup(id1)
	if !ok {
		return false
	}
	j, ok := g.index.Lookup(id2)
	if !ok {
		return false
	}
	if g.edgeChecks && g.adjacent(i, j) {
		return false
	}

	a := g.adj.Append(adjacency.ListID(i), j)
	b := g.adj.Append(adjacency.ListID(j), i)
	g.adj.SetTwin(a, b)
	g.adj.SetTwin(b, a)

	g.shift(i, g.verts[j].weight)
	g.shift(j, g.verts[i].weight)

	return true
}

// DeleteNode removes id and every edge incident to it.
//
// It returns false if id is absent. Otherwise the vertex leaves the registry
// and the heap, and for each of its adjacency entries the twin is spliced out
// of the neighbor's list in O(1), the neighbor's neighborhood weight drops by
// the deleted weight and its heap key is updated.
//
// Complexity: O(deg(id) · log n).
func (g *Graph) DeleteNode(id int64) bool {
	i, ok := g.index.Lookup(id)
	if !ok {
		return false
	}
	v := &g.verts[i]

	g.index.RemoveHandle(v.reg)
	g.heap.Delete(v.heap)

	w := v.weight
	g.adj.Each(adjacency.ListID(i), func(e adjacency.EntryID, nbr int32) bool {
		// The twin lives in nbr's list, never in i's: self-loops are rejected.
		g.adj.Remove(g.adj.Twin(e))
		g.shift(nbr, -w)
		return true
	})
	g.adj.Release(adjacency.ListID(i))

	v.alive = false
	v.nw = v.weight

	return true
}

// shift adds delta to the neighborhood weight of arena index i and pushes the
// new key into the heap.
func (g *Graph) shift(i int32, delta int64) {
	v := &g.verts[i]
	v.nw += delta
	g.heap.Update(v.heap, v.nw)
}

// adjacent reports whether i and j already share an edge by scanning the
// shorter adjacency list.
func (g *Graph) adjacent(i, j int32) bool {
	from, target := i, j
	if g.adj.Len(adjacency.ListID(j)) < g.adj.Len(adjacency.ListID(i)) {
		from, target = j, i
	}
	found := false
	g.adj.Each(adjacency.ListID(from), func(_ adjacency.EntryID, nbr int32) bool {
		found = nbr == target
		return !found
	})

	return found
}

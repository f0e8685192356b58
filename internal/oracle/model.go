// SPDX-License-Identifier: MIT
// Package: vicinity/internal/oracle
//
// model.go - brute-force reference graph on ordered B-trees.

package oracle

import (
	"math"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/vicinity/neighborhood"
)

type modelVertex struct {
	id     int64
	weight int64
	nw     int64
}

// pair is a directed half of an undirected edge; both halves are stored.
type pair struct {
	from, to int64
}

func vertexLess(a, b modelVertex) bool { return a.id < b.id }

func pairLess(a, b pair) bool {
	if a.from != b.from {
		return a.from < b.from
	}
	return a.to < b.to
}

// Model is the reference implementation: ordered sets, no heap.
type Model struct {
	verts *btree.BTreeG[modelVertex]
	pairs *btree.BTreeG[pair]
}

// NewModel seeds a model with vs. Later duplicates overwrite earlier ones,
// so callers should pass the same distinct-id set as the Graph.
func NewModel(vs []neighborhood.Vertex) *Model {
	m := &Model{
		verts: btree.NewBTreeG[modelVertex](vertexLess),
		pairs: btree.NewBTreeG[pair](pairLess),
	}
	for _, v := range vs {
		m.verts.Set(modelVertex{id: v.ID, weight: v.Weight, nw: v.Weight})
	}

	return m
}

// AddEdge mirrors Graph.AddEdge.
func (m *Model) AddEdge(u, v int64) bool {
	if u == v || m.HasEdge(u, v) {
		return false
	}
	a, okA := m.verts.Get(modelVertex{id: u})
	b, okB := m.verts.Get(modelVertex{id: v})
	if !okA || !okB {
		return false
	}
	a.nw += b.weight
	b.nw += a.weight
	m.verts.Set(a)
	m.verts.Set(b)
	m.pairs.Set(pair{from: u, to: v})
	m.pairs.Set(pair{from: v, to: u})

	return true
}

// DeleteNode mirrors Graph.DeleteNode.
func (m *Model) DeleteNode(id int64) bool {
	x, ok := m.verts.Delete(modelVertex{id: id})
	if !ok {
		return false
	}
	for _, nb := range m.Neighbors(id) {
		m.pairs.Delete(pair{from: id, to: nb})
		m.pairs.Delete(pair{from: nb, to: id})
		y, _ := m.verts.Get(modelVertex{id: nb})
		y.nw -= x.weight
		m.verts.Set(y)
	}

	return true
}

// HasEdge reports whether {u, v} is present.
func (m *Model) HasEdge(u, v int64) bool {
	_, ok := m.pairs.Get(pair{from: u, to: v})
	return ok
}

// Neighbors returns the neighbors of id in ascending order.
func (m *Model) Neighbors(id int64) []int64 {
	var out []int64
	m.pairs.Ascend(pair{from: id, to: math.MinInt64}, func(p pair) bool {
		if p.from != id {
			return false
		}
		out = append(out, p.to)
		return true
	})

	return out
}

// NeighborhoodWeight returns the stored nw of id.
func (m *Model) NeighborhoodWeight(id int64) (int64, bool) {
	x, ok := m.verts.Get(modelVertex{id: id})
	return x.nw, ok
}

// NodeCount is the number of live vertices.
func (m *Model) NodeCount() int { return m.verts.Len() }

// EdgeCount is the number of undirected edges.
func (m *Model) EdgeCount() int { return m.pairs.Len() / 2 }

// IDs returns live ids in ascending order.
func (m *Model) IDs() []int64 {
	out := make([]int64, 0, m.verts.Len())
	m.verts.Scan(func(x modelVertex) bool {
		out = append(out, x.id)
		return true
	})

	return out
}

// MaxNeighborhoodWeight scans every vertex. With ties any maximal vertex is
// acceptable, so only the value is returned.
func (m *Model) MaxNeighborhoodWeight() (int64, bool) {
	best, found := int64(math.MinInt64), false
	m.verts.Scan(func(x modelVertex) bool {
		if !found || x.nw > best {
			best, found = x.nw, true
		}
		return true
	})

	return best, found
}

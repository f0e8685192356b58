// SPDX-License-Identifier: MIT
// Package neighborhood maintains, for a fixed set of weighted vertices under
// edge insertion and vertex deletion, the vertex with the largest
// neighborhood weight: its own weight plus the weights of all its current
// neighbors. The answer is available in O(1) after every mutation.
//
// A Graph composes three structures, each vertex holding one slot in all of them:
//
//	registry.Registry[int32]  id → arena index            O(1) expected lookup
//	maxheap.Heap[int32]       key = neighborhood weight    O(log n) update/delete
//	adjacency.Store           one ring per vertex, twins   O(1) mutual edge removal
//
// and keeps the invariant
//
//	heap.Key(v) == v.nw == v.weight + Σ weight(u) for u ∈ N(v)
//
// after every operation.
//
// Core methods:
//
//	New(vertices, opts...) (*Graph, error)   O(n)
//	AddEdge(id1, id2) bool                   O(log n)
//	DeleteNode(id) bool                      O(deg · log n)
//	MaxNeighborhoodWeight() (Node, bool)     O(1)
//	NeighborhoodWeight(id) (int64, bool)     O(1) expected
//	NodeCount() int                          O(1)
//	EdgeCount() int                          O(n), recomputed by summation
//	IsEmpty() bool                           O(1)
//
// Contract:
//
//   - Vertex ids are fixed at construction; there is no vertex insertion.
//     Callers that need new vertices rebuild the Graph.
//   - Not-found ids yield false / (zero, false) and never mutate anything.
//   - AddEdge(x, x) is always false with no effect.
//   - A second AddEdge between the same pair is a caller error. By default it
//     is not detected (it would cost a list scan); WithEdgeChecks turns the
//     scan on and makes such calls return false.
//   - Duplicate ids passed to New are rejected with ErrDuplicateID.
//
// Concurrency: a Graph is single-threaded. Callers sharing one across
// goroutines wrap it with NewLocked, which holds a lock around each whole
// operation; AddEdge and DeleteNode touch several cross-linked structures that
// are only consistent between operations, never in the middle of one.
//
// Example:
//
//	g, _ := neighborhood.New([]neighborhood.Vertex{{ID: 1, Weight: 3}, {ID: 2, Weight: 4}, {ID: 3, Weight: 1}})
//	g.AddEdge(1, 2)
//	g.AddEdge(1, 3)
//	top, _ := g.MaxNeighborhoodWeight() // top.ID == 1, top.NeighborhoodWeight == 8
package neighborhood

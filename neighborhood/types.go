// SPDX-License-Identifier: MIT
// Package: vicinity/neighborhood
//
// types.go - public value types, sentinel errors and GraphOption.

package neighborhood

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/vicinity/adjacency"
	"github.com/katalvlaran/vicinity/maxheap"
	"github.com/katalvlaran/vicinity/registry"
)

// Sentinel errors for neighborhood graphs.
var (
	// ErrDuplicateID indicates New received the same vertex id twice.
	ErrDuplicateID = errors.New("neighborhood: duplicate vertex id")

	// ErrTooManyVertices indicates New received more vertices than int32 indices can address.
	ErrTooManyVertices = errors.New("neighborhood: too many vertices")

	// ErrInvariant indicates Validate found an inconsistency between the heap,
	// the registry and the adjacency lists.
	ErrInvariant = errors.New("neighborhood: invariant violated")
)

// Vertex is the caller-supplied (id, weight) pair used at construction.
type Vertex struct {
	ID     int64
	Weight int64
}

// Node is a read-only snapshot of one live vertex.
type Node struct {
	ID                 int64
	Weight             int64
	NeighborhoodWeight int64
	Degree             int
}

// vertex is the arena record. Its arena index is also its adjacency ListID and
// the payload stored in both the heap and the registry.
type vertex struct {
	id     int64
	weight int64
	nw     int64 // own weight + Σ neighbor weights
	heap   maxheap.Handle
	reg    registry.Handle
	alive  bool
}

// Graph is the neighborhood-weight index. The zero value is not usable; call New.
type Graph struct {
	verts []vertex
	heap  *maxheap.Heap[int32]
	index *registry.Registry[int32]
	adj   *adjacency.Store

	edgeChecks bool
	regOpts    []registry.Option
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithSeed fixes the registry's hash parameters for reproducible bucket layouts.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.regOpts = append(g.regOpts, registry.WithSeed(seed)) }
}

// WithRand draws the registry's hash parameters from r. Panics on nil.
func WithRand(r *rand.Rand) GraphOption {
	if r == nil {
		panic("neighborhood: WithRand(nil)")
	}
	return func(g *Graph) { g.regOpts = append(g.regOpts, registry.WithRand(r)) }
}

// WithLoadFactor sets the registry load factor. Panics unless 0 < f ≤ 1.
func WithLoadFactor(f float64) GraphOption {
	opt := registry.WithLoadFactor(f)
	return func(g *Graph) { g.regOpts = append(g.regOpts, opt) }
}

// WithEdgeChecks makes AddEdge reject an already present edge, at the cost of
// scanning the shorter of the two adjacency lists.
func WithEdgeChecks() GraphOption {
	return func(g *Graph) { g.edgeChecks = true }
}

// SPDX-License-Identifier: MIT
// Package vicinity maintains a dynamic undirected vertex-weighted graph and
// answers "which vertex has the heaviest neighborhood" in O(1).
//
// The neighborhood weight of a vertex is its own weight plus the weights of
// its current neighbors. Edges are added, vertices are deleted, and the
// maximum stays available throughout.
//
// Layout:
//
//	neighborhood/: Graph: New, AddEdge, DeleteNode, MaxNeighborhoodWeight, queries, Validate, Locked
//	maxheap/     : positional max-heap with stable handles and O(log n) update/delete
//	registry/    : vertex-id registry on universal hashing ((a·k+b) mod p) mod m with chaining
//	adjacency/   : arena of circular doubly linked lists with twin entries for O(1) edge splicing
//	builder/     : deterministic vertex sets and edge constructors (random, complete, star, path, cycle)
//	internal/    : oracle, measure, metrics, scenario, config and cli behind cmd/vicinity
//
// Complexity:
//
//	New                    O(n)
//	AddEdge                O(log n)
//	DeleteNode             O(deg · log n)
//	MaxNeighborhoodWeight  O(1)
//	NodeCount              O(1)
//
// Graph itself is not safe for concurrent use; wrap it with neighborhood.NewLocked.
package vicinity

// SPDX-License-Identifier: MIT
// Package builder produces deterministic vertex sets and edge workloads for
// neighborhood graphs: test fixtures, CLI demos and measurement runs.
//
// Two halves:
//
//   - Vertex sets: Vertices(n, opts...) draws ids via an IDFn (sequential by
//     default, or distinct random ids with WithRandomIDs) and weights via a
//     WeightFn (constant 1 by default).
//   - Edge constructors: RandomEdges, Complete, Star, Path, Cycle. Each is a
//     Constructor returning undirected, loop-free edges over a given id list.
//
// BuildGraph ties both together:
//
//	vs, _ := builder.Vertices(100, builder.WithSeed(7), builder.WithWeightRange(1, 50))
//	g, edges, err := builder.BuildGraph(vs, nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Path(), builder.RandomEdges(200))
//
// Contract:
//   - Same inputs, options, seed and constructor order ⇒ identical output.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrTooManyEdges, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with the method name.
//   - BuildGraph applies each distinct edge once even if several constructors
//     emit it, so the resulting graph never receives a duplicate edge.
package builder

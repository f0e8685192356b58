// SPDX-License-Identifier: MIT
// Package oracle cross-checks a neighborhood.Graph against a brute-force model.
//
// Model keeps vertices and directed edge pairs in ordered B-trees
// (tidwall/btree) and recomputes nothing incrementally it cannot verify by
// scanning. Driver owns a Graph, a Model and one seeded RNG, applies the same
// random workload to both and calls Verify after every batch:
//
//	d, _ := oracle.NewDriver(1000, 7)
//	_ = d.RandomEdges(2000)
//	_ = d.RandomDeletions(500)
//	_ = d.RandomOperations(500)
//
// Every batch method returns ErrMismatch (wrapped with detail) on the first
// divergence and ErrExhausted when the request cannot be met.
package oracle

// SPDX-License-Identifier: MIT
// Package registry is a fixed-size chained hash index from int64 ids to values.
//
// The bucket count is chosen once, m = ceil(n / loadFactor), and never changes:
// the expected population only shrinks after construction. Buckets are chosen
// with a universal hash family drawn per instance:
//
//	h(id) = ((a·id + b) mod p) mod m,   p = 1_000_000_009,
//	a ∈ [1, p-1], b ∈ [0, p)
//
// Chains are doubly linked through an entry arena, so removal through a Handle
// is O(1) and removal by id costs one chain walk. Removal physically unlinks;
// there are no tombstones and no rehashing.
//
// Options:
//
//	WithLoadFactor(f)  0 < f ≤ 1, default 0.5
//	WithSeed(seed)     deterministic a, b (tests, golden runs)
//	WithRand(r)        explicit RNG
//
// Errors:
//
//	ErrDuplicateID  Insert of an id that is already present.
package registry

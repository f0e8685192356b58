// SPDX-License-Identifier: MIT
// Package: vicinity/registry
//
// registry.go - Registry type, universal hashing and chain mechanics.

package registry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrDuplicateID indicates Insert was called with an id that is already present.
var ErrDuplicateID = errors.New("registry: duplicate id")

// Prime modulus of the hash family. Any a·k with a, k < prime fits in uint64.
const prime uint64 = 1_000_000_009

// DefaultLoadFactor is the bucket load used when WithLoadFactor is not given.
const DefaultLoadFactor = 0.5

// Handle is a stable reference to one chain node.
type Handle int32

// NoHandle is returned by a failed Insert.
const NoHandle Handle = -1

// none terminates a chain.
const none int32 = -1

// entry is one chain node: (id, value, prev, next).
type entry[V any] struct {
	id     int64
	val    V
	prev   int32
	next   int32
	bucket int32 // -1 when the slot is free
}

// Option configures a Registry before creation.
type Option func(*config)

type config struct {
	loadFactor float64
	rng        *rand.Rand
}

// WithLoadFactor sets the target bucket load. Panics unless 0 < f ≤ 1.
func WithLoadFactor(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic("registry: WithLoadFactor(f) requires 0 < f <= 1")
	}
	return func(c *config) { c.loadFactor = f }
}

// WithSeed draws the hash parameters from a deterministic source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand draws the hash parameters from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("registry: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// Registry maps int64 ids to values of type V.
type Registry[V any] struct {
	buckets []int32 // chain head per bucket
	entries []entry[V]
	free    []int32
	size    int
	a, b    uint64
}

// New creates a registry sized for expected ids.
// Complexity: O(expected).
func New[V any](expected int, opts ...Option) *Registry[V] {
	cfg := config{loadFactor: DefaultLoadFactor}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if expected < 0 {
		expected = 0
	}

	m := int(math.Ceil(float64(expected) / cfg.loadFactor))
	if m < 1 {
		m = 1
	}
	r := &Registry[V]{
		buckets: make([]int32, m),
		entries: make([]entry[V], 0, expected),
		a:       1 + uint64(cfg.rng.Int63n(int64(prime-1))),
		b:       uint64(cfg.rng.Int63n(int64(prime))),
	}
	for i := range r.buckets {
		r.buckets[i] = none
	}

	return r
}

// Len returns the number of ids present.
func (r *Registry[V]) Len() int { return r.size }

// Buckets returns the fixed bucket count m.
func (r *Registry[V]) Buckets() int { return len(r.buckets) }

// Params returns the hash parameters (a, b, p).
func (r *Registry[V]) Params() (a, b, p uint64) { return r.a, r.b, prime }

// Insert maps id to val and returns a handle for O(1) removal.
// Complexity: O(1) expected (one chain walk for the duplicate check).
func (r *Registry[V]) Insert(id int64, val V) (Handle, error) {
	bk := r.bucket(id)
	if r.find(bk, id) != none {
		return NoHandle, fmt.Errorf("registry: Insert(%d): %w", id, ErrDuplicateID)
	}

	idx := r.alloc()
	head := r.buckets[bk]
	r.entries[idx] = entry[V]{id: id, val: val, prev: none, next: head, bucket: bk}
	if head != none {
		r.entries[head].prev = idx
	}
	r.buckets[bk] = idx
	r.size++

	return Handle(idx), nil
}

// Lookup returns the value mapped to id.
// Complexity: O(1) expected.
func (r *Registry[V]) Lookup(id int64) (V, bool) {
	if idx := r.find(r.bucket(id), id); idx != none {
		return r.entries[idx].val, true
	}
	var zero V

	return zero, false
}

// Contains reports whether id is present.
func (r *Registry[V]) Contains(id int64) bool {
	return r.find(r.bucket(id), id) != none
}

// Remove unlinks id and reports whether it was present.
// Complexity: O(1) expected.
func (r *Registry[V]) Remove(id int64) bool {
	idx := r.find(r.bucket(id), id)
	if idx == none {
		return false
	}
	r.unlink(idx)

	return true
}

// RemoveHandle unlinks the node behind h in O(1) and reports whether h was live.
func (r *Registry[V]) RemoveHandle(h Handle) bool {
	if h < 0 || int(h) >= len(r.entries) || r.entries[h].bucket == none {
		return false
	}
	r.unlink(int32(h))

	return true
}

// Each calls fn for every (id, value) pair in bucket order, stopping early
// when fn returns false.
func (r *Registry[V]) Each(fn func(id int64, val V) bool) {
	for _, head := range r.buckets {
		for idx := head; idx != none; idx = r.entries[idx].next {
			if !fn(r.entries[idx].id, r.entries[idx].val) {
				return
			}
		}
	}
}

// ChainLengths returns the number of ids per bucket.
func (r *Registry[V]) ChainLengths() []int {
	out := make([]int, len(r.buckets))
	for b, head := range r.buckets {
		for idx := head; idx != none; idx = r.entries[idx].next {
			out[b]++
		}
	}
	return out
}

// bucket computes h(id). Negative ids are reduced with floor-mod first so that
// every intermediate product stays below 2^61.
func (r *Registry[V]) bucket(id int64) int32 {
	k := id % int64(prime)
	if k < 0 {
		k += int64(prime)
	}
	h := (r.a*uint64(k) + r.b) % prime

	return int32(h % uint64(len(r.buckets)))
}

// find walks bucket bk for id.
func (r *Registry[V]) find(bk int32, id int64) int32 {
	for idx := r.buckets[bk]; idx != none; idx = r.entries[idx].next {
		if r.entries[idx].id == id {
			return idx
		}
	}
	return none
}

// unlink splices idx out of its chain and recycles the slot.
func (r *Registry[V]) unlink(idx int32) {
	e := r.entries[idx]
	if e.prev != none {
		r.entries[e.prev].next = e.next
	} else {
		r.buckets[e.bucket] = e.next
	}
	if e.next != none {
		r.entries[e.next].prev = e.prev
	}
	r.entries[idx] = entry[V]{bucket: none, prev: none, next: none}
	r.free = append(r.free, idx)
	r.size--
}

func (r *Registry[V]) alloc() int32 {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		return idx
	}
	r.entries = append(r.entries, entry[V]{})

	return int32(len(r.entries) - 1)
}

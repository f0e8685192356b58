// SPDX-License-Identifier: MIT
// Package: vicinity/maxheap
//
// heap.go - Heap type, positional sift algorithms and invariant validation.

package maxheap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heap operations.
var (
	// ErrFull indicates Insert was called on a heap already holding Cap() slots.
	ErrFull = errors.New("maxheap: capacity exhausted")

	// ErrOrder indicates a child key exceeds its parent's key.
	ErrOrder = errors.New("maxheap: heap order violated")

	// ErrPosition indicates a slot's stored position differs from its array index.
	ErrPosition = errors.New("maxheap: stale position")
)

// Handle is a stable reference to one heap slot.
type Handle int32

// NoHandle is returned by Peek on an empty heap.
const NoHandle Handle = -1

// notInHeap marks a slot that was deleted.
const notInHeap = -1

// slot is the per-handle record: (key, payload, position).
type slot[T any] struct {
	key     int64
	payload T
	pos     int
}

// Heap is a max-heap over int64 keys carrying payloads of type T.
type Heap[T any] struct {
	slots []slot[T] // indexed by Handle, never shrinks
	order []Handle  // order[i] is the handle living at array index i
}

// New returns an empty heap able to hold capacity slots.
// Panics on negative capacity.
// Complexity: O(capacity) space.
func New[T any](capacity int) *Heap[T] {
	if capacity < 0 {
		panic("maxheap: New(capacity<0)")
	}
	return &Heap[T]{
		slots: make([]slot[T], 0, capacity),
		order: make([]Handle, 0, capacity),
	}
}

// Len returns the number of live slots.
func (h *Heap[T]) Len() int { return len(h.order) }

// Cap returns the fixed capacity.
func (h *Heap[T]) Cap() int { return cap(h.slots) }

// Insert appends (key, payload) and sifts it up.
// Handles are issued once and never reused, so at most Cap() inserts succeed
// over the heap's lifetime.
// Complexity: O(log n).
func (h *Heap[T]) Insert(key int64, payload T) (Handle, error) {
	if len(h.slots) == cap(h.slots) {
		return NoHandle, fmt.Errorf("maxheap: Insert(key=%d) with cap=%d: %w", key, cap(h.slots), ErrFull)
	}
	hd := Handle(len(h.slots))
	h.slots = append(h.slots, slot[T]{key: key, payload: payload})
	h.order = append(h.order, hd)
	h.place(len(h.order)-1, hd)
	h.up(len(h.order) - 1)

	return hd, nil
}

// Peek returns the handle holding the maximum key.
// Complexity: O(1).
func (h *Heap[T]) Peek() (Handle, bool) {
	if len(h.order) == 0 {
		return NoHandle, false
	}
	return h.order[0], true
}

// Contains reports whether hd is a live slot.
func (h *Heap[T]) Contains(hd Handle) bool {
	return hd >= 0 && int(hd) < len(h.slots) && h.slots[hd].pos != notInHeap
}

// Key returns the key of hd. The result is undefined for stale handles.
func (h *Heap[T]) Key(hd Handle) int64 { return h.slots[hd].key }

// Payload returns the payload of hd.
func (h *Heap[T]) Payload(hd Handle) T { return h.slots[hd].payload }

// Position returns the current array index of hd, or -1 if deleted.
func (h *Heap[T]) Position(hd Handle) int { return h.slots[hd].pos }

// Update overwrites the key of hd and restores heap order by sifting in the
// single direction the change requires. It reports false for stale handles.
// Complexity: O(log n).
func (h *Heap[T]) Update(hd Handle, key int64) bool {
	if !h.Contains(hd) {
		return false
	}
	s := &h.slots[hd]
	old := s.key
	s.key = key

	switch {
	case key > old:
		h.up(s.pos)
	case key < old:
		h.down(s.pos)
	}

	return true
}

// Delete removes hd from the heap. It reports false for stale handles.
//
// Steps:
//  1. If hd sits in the last array index, truncate.
//  2. Otherwise move the last slot into hd's index, truncate, then sift the
//     relocated slot up or down (only one can apply).
//
// Complexity: O(log n).
func (h *Heap[T]) Delete(hd Handle) bool {
	if !h.Contains(hd) {
		return false
	}
	pos := h.slots[hd].pos
	last := len(h.order) - 1

	if pos != last {
		moved := h.order[last]
		h.place(pos, moved)
		h.order = h.order[:last]
		if !h.up(pos) {
			h.down(pos)
		}
	} else {
		h.order = h.order[:last]
	}
	h.slots[hd].pos = notInHeap

	return true
}

// Validate checks the max-heap order at every index and that every live
// slot's stored position equals its true index.
// Complexity: O(n).
func (h *Heap[T]) Validate() error {
	for i, hd := range h.order {
		if got := h.slots[hd].pos; got != i {
			return fmt.Errorf("maxheap: handle %d at index %d stores pos %d: %w", hd, i, got, ErrPosition)
		}
		if i == 0 {
			continue
		}
		p := parent(i)
		if h.slots[hd].key > h.slots[h.order[p]].key {
			return fmt.Errorf("maxheap: key[%d]=%d > key[parent %d]=%d: %w",
				i, h.slots[hd].key, p, h.slots[h.order[p]].key, ErrOrder)
		}
	}

	return nil
}

// place writes hd into array index i and records i as hd's position.
// Every slot movement goes through here.
func (h *Heap[T]) place(i int, hd Handle) {
	h.order[i] = hd
	h.slots[hd].pos = i
}

// swap exchanges the slots at indices i and j, fixing both positions.
func (h *Heap[T]) swap(i, j int) {
	hi, hj := h.order[i], h.order[j]
	h.place(i, hj)
	h.place(j, hi)
}

// keyAt returns the key stored at array index i.
func (h *Heap[T]) keyAt(i int) int64 { return h.slots[h.order[i]].key }

// up sifts index i toward the root while its key exceeds its parent's.
// It reports whether the slot moved.
func (h *Heap[T]) up(i int) bool {
	start := i
	for i > 0 {
		p := parent(i)
		if h.keyAt(i) <= h.keyAt(p) {
			break
		}
		h.swap(i, p)
		i = p
	}

	return i != start
}

// down sifts index i toward the leaves while a child has a strictly greater key.
// It reports whether the slot moved.
func (h *Heap[T]) down(i int) bool {
	start := i
	n := len(h.order)
	for {
		l := left(i)
		if l >= n {
			break
		}
		c := l
		// Right child wins only with a strictly greater key; ties go left.
		if r := right(i); r < n && h.keyAt(r) > h.keyAt(l) {
			c = r
		}
		if h.keyAt(c) <= h.keyAt(i) {
			break
		}
		h.swap(i, c)
		i = c
	}

	return i != start
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

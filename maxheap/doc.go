// SPDX-License-Identifier: MIT
// Package maxheap implements a fixed-capacity, array-backed max-heap whose
// slots can be updated or deleted at arbitrary positions in O(log n).
//
// Every Insert returns a stable Handle. The heap keeps, for each handle, the
// key, an opaque payload and the handle's current index in the backing array.
// All sift algorithms move slots through a single helper (place) that writes
// the handle into the array AND rewrites its stored position, so the
// position field can never drift from the real index.
//
// Index scheme (0-based):
//
//	parent(i) = (i-1)/2
//	left(i)   = 2i+1
//	right(i)  = 2i+2
//
//	           0
//	        /     \
//	       1       2
//	      / \     / \
//	     3   4   5   6
//
// Operations:
//
//	Insert(key, payload) (Handle, error)  O(log n), ErrFull past capacity
//	Peek() (Handle, bool)                 O(1)
//	Update(h, key) bool                   O(log n), sifts in one direction only
//	Delete(h) bool                        O(log n), swap-with-last then sift
//	Validate() error                      O(n), checks order and positions
//
// Ties: a down-sift moves toward the strictly greater child; equal children
// resolve to the left one. Nothing beyond "root has a maximal key" is promised.
//
// Stale handles (deleted, or never issued) make Update and Delete report false
// without touching the heap.
//
// Concurrency: a Heap is not safe for concurrent mutation.
package maxheap

// SPDX-License-Identifier: MIT
// Package: vicinity/adjacency
//
// store.go - Store type, list mechanics and entry accessors.

package adjacency

// EntryID addresses one entry inside a Store arena.
type EntryID int32

// ListID addresses one owner list inside a Store.
type ListID int32

// NoEntry marks an absent link (empty list head, unset twin, end of iteration).
const NoEntry EntryID = -1

// noOwner marks an entry slot that sits on the free list.
const noOwner ListID = -1

// entry is one node of a circular doubly linked list.
type entry struct {
	owner ListID  // list the entry lives in, noOwner when free
	item  int32   // caller payload, typically a neighbor arena index
	prev  EntryID // previous entry in owner's ring
	next  EntryID // next entry in owner's ring
	twin  EntryID // mirror entry in the neighbor's list
}

// list is the head pointer and length of one ring.
type list struct {
	head   EntryID
	length int
}

// Option configures a Store before creation.
type Option func(*Store)

// WithEntryCapacity preallocates room for n entries (2 per undirected edge).
// Panics on negative n.
func WithEntryCapacity(n int) Option {
	if n < 0 {
		panic("adjacency: WithEntryCapacity(n<0)")
	}
	return func(s *Store) { s.entries = make([]entry, 0, n) }
}

// Store holds a fixed number of lists backed by one growable entry arena.
type Store struct {
	entries []entry
	free    []EntryID // recycled entry slots, LIFO
	lists   []list
	live    int // entries currently linked into some list
}

// NewStore creates n empty lists, one per owner index 0..n-1.
// Complexity: O(n).
func NewStore(n int, opts ...Option) *Store {
	s := &Store{lists: make([]list, n)}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.lists {
		s.lists[i].head = NoEntry
	}

	return s
}

// Lists returns the number of owner lists.
func (s *Store) Lists() int { return len(s.lists) }

// Entries returns the number of live entries across all lists.
func (s *Store) Entries() int { return s.live }

// Append adds item at the tail of list l and returns the new entry.
// The twin of the new entry is NoEntry until SetTwin is called.
// Complexity: O(1) amortized.
func (s *Store) Append(l ListID, item int32) EntryID {
	id := s.alloc()
	e := &s.entries[id]
	e.owner, e.item, e.twin = l, item, NoEntry

	ls := &s.lists[l]
	if ls.length == 0 {
		// Single-element ring points at itself.
		e.prev, e.next = id, id
		ls.head = id
		ls.length = 1
		s.live++
		return id
	}

	head := ls.head
	tail := s.entries[head].prev
	e.prev, e.next = tail, head
	s.entries[tail].next = id
	s.entries[head].prev = id
	ls.length++
	s.live++

	return id
}

// Remove splices entry id out of its owner list in O(1) and recycles the slot.
// It reports false, doing nothing, if id is not a live entry.
// The twin of id is left untouched; callers remove both halves explicitly.
func (s *Store) Remove(id EntryID) bool {
	if !s.alive(id) {
		return false
	}
	e := s.entries[id]
	ls := &s.lists[e.owner]

	switch {
	case ls.length == 1:
		ls.head = NoEntry
	default:
		s.entries[e.prev].next = e.next
		s.entries[e.next].prev = e.prev
		if ls.head == id {
			ls.head = e.next
		}
	}
	ls.length--
	s.release(id)

	return true
}

// Release drops every entry of list l without touching twins.
// Used after the caller has already unlinked the mirror halves.
// Complexity: O(len(l)).
func (s *Store) Release(l ListID) {
	ls := &s.lists[l]
	cur := ls.head
	for i := 0; i < ls.length; i++ {
		next := s.entries[cur].next
		s.release(cur)
		cur = next
	}
	ls.head = NoEntry
	ls.length = 0
}

// SetTwin records twin as the mirror entry of id.
func (s *Store) SetTwin(id, twin EntryID) { s.entries[id].twin = twin }

// Twin returns the mirror entry of id, or NoEntry if none was set.
func (s *Store) Twin(id EntryID) EntryID { return s.entries[id].twin }

// Item returns the payload stored in entry id.
func (s *Store) Item(id EntryID) int32 { return s.entries[id].item }

// Owner returns the list entry id lives in.
func (s *Store) Owner(id EntryID) ListID { return s.entries[id].owner }

// Len returns the number of entries in list l.
func (s *Store) Len(l ListID) int { return s.lists[l].length }

// Head returns the first entry of list l, or NoEntry when l is empty.
func (s *Store) Head(l ListID) EntryID { return s.lists[l].head }

// Next returns the entry after id in its list, or NoEntry when id is the tail.
func (s *Store) Next(id EntryID) EntryID {
	e := s.entries[id]
	if e.next == s.lists[e.owner].head {
		return NoEntry
	}
	return e.next
}

// Each calls fn for every entry of list l from head to tail. Iteration stops
// early when fn returns false. fn must not mutate list l.
func (s *Store) Each(l ListID, fn func(id EntryID, item int32) bool) {
	ls := s.lists[l]
	cur := ls.head
	for i := 0; i < ls.length; i++ {
		if !fn(cur, s.entries[cur].item) {
			return
		}
		cur = s.entries[cur].next
	}
}

// alive reports whether id addresses a linked entry.
func (s *Store) alive(id EntryID) bool {
	return id >= 0 && int(id) < len(s.entries) && s.entries[id].owner != noOwner
}

// alloc returns a free entry slot, reusing released ones first.
func (s *Store) alloc() EntryID {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return id
	}
	s.entries = append(s.entries, entry{})

	return EntryID(len(s.entries) - 1)
}

// release marks id free and pushes it onto the free list.
func (s *Store) release(id EntryID) {
	s.entries[id] = entry{owner: noOwner, prev: NoEntry, next: NoEntry, twin: NoEntry}
	s.free = append(s.free, id)
	s.live--
}

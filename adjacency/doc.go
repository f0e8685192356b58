// SPDX-License-Identifier: MIT
// Package adjacency provides an arena of circular doubly linked neighbor lists.
//
// Every list belongs to one owner (a vertex index in the caller's arena) and holds
// entries that carry an opaque int32 item, usually the arena index of a neighbor.
// Each entry also stores a twin EntryID: the mirror entry that represents the same
// undirected edge in the other endpoint's list.
//
// The store never discovers or validates twins. It only stores the pointer so the
// caller can splice both halves of an edge in O(1) from either side:
//
//	a := s.Append(u, int32(v)) // entry in u's list pointing at v
//	b := s.Append(v, int32(u)) // entry in v's list pointing at u
//	s.SetTwin(a, b)
//	s.SetTwin(b, a)
//	...
//	s.Remove(s.Twin(a))        // drop v's half without searching v's list
//
// Layout:
//
//	entries []entry   one arena shared by every list, freed slots recycled
//	lists   []list    head EntryID + length per owner
//
//	head ─► e0 ⇄ e1 ⇄ e2
//	        ▲          │
//	        └──────────┘   (tail == head.prev)
//
// Complexity:
//
//	Append, Remove, SetTwin, Twin, Item, Owner, Len: O(1)
//	Each, Release:                                    O(len(list))
//
// Concurrency: a Store is not safe for concurrent mutation.
package adjacency

// SPDX-License-Identifier: MIT
// Package: vicinity/neighborhood
//
// validate.go - full consistency check across heap, registry and adjacency lists.

package neighborhood

import (
	"fmt"

	"github.com/katalvlaran/vicinity/adjacency"
)

// Validate checks every structural invariant and returns the first violation
// wrapped with ErrInvariant (or the heap's own sentinel). It is meant for
// tests and diagnostics.
//
// Checked, for every live vertex v:
//  1. the registry maps v.id back to v, and only live ids are registered;
//  2. v's heap slot is live and its key equals v.nw;
//  3. v.nw == v.weight + Σ neighbor weights;
//  4. every adjacency entry points at a live neighbor, its twin lives in that
//     neighbor's list, points back at v and names the entry as its own twin;
//  5. no neighbor appears twice.
//
// Plus: heap order and positions, and NodeCount == registry size.
//
// Complexity: O(n + m).
func (g *Graph) Validate() error {
	if err := g.heap.Validate(); err != nil {
		return err
	}

	live := 0
	for i := range g.verts {
		v := &g.verts[i]
		if !v.alive {
			if g.heap.Contains(v.heap) {
				return fmt.Errorf("%w: deleted id %d still in heap", ErrInvariant, v.id)
			}
			continue
		}
		live++
		if err := g.validateVertex(int32(i)); err != nil {
			return err
		}
	}

	if live != g.heap.Len() || live != g.index.Len() {
		return fmt.Errorf("%w: live=%d heap=%d registry=%d", ErrInvariant, live, g.heap.Len(), g.index.Len())
	}

	var stray error
	g.index.Each(func(id int64, i int32) bool {
		if !g.verts[i].alive || g.verts[i].id != id {
			stray = fmt.Errorf("%w: registry maps %d to arena slot %d (id %d, alive %t)",
				ErrInvariant, id, i, g.verts[i].id, g.verts[i].alive)
			return false
		}
		return true
	})

	return stray
}

func (g *Graph) validateVertex(i int32) error {
	v := &g.verts[i]

	if at, ok := g.index.Lookup(v.id); !ok || at != i {
		return fmt.Errorf("%w: id %d not registered at slot %d", ErrInvariant, v.id, i)
	}
	if !g.heap.Contains(v.heap) || g.heap.Payload(v.heap) != i {
		return fmt.Errorf("%w: id %d has no heap slot", ErrInvariant, v.id)
	}
	if key := g.heap.Key(v.heap); key != v.nw {
		return fmt.Errorf("%w: id %d heap key %d != nw %d", ErrInvariant, v.id, key, v.nw)
	}

	sum := v.weight
	seen := make(map[int32]struct{}, g.adj.Len(adjacency.ListID(i)))
	var bad error
	g.adj.Each(adjacency.ListID(i), func(e adjacency.EntryID, nbr int32) bool {
		u := &g.verts[nbr]
		tw := g.adj.Twin(e)
		switch {
		case !u.alive:
			bad = fmt.Errorf("%w: id %d lists deleted neighbor %d", ErrInvariant, v.id, u.id)
		case nbr == i:
			bad = fmt.Errorf("%w: id %d lists itself", ErrInvariant, v.id)
		case tw == adjacency.NoEntry || g.adj.Owner(tw) != adjacency.ListID(nbr):
			bad = fmt.Errorf("%w: edge %d-%d twin not in neighbor list", ErrInvariant, v.id, u.id)
		case g.adj.Item(tw) != i || g.adj.Twin(tw) != e:
			bad = fmt.Errorf("%w: edge %d-%d twins disagree", ErrInvariant, v.id, u.id)
		}
		if _, dup := seen[nbr]; dup && bad == nil {
			bad = fmt.Errorf("%w: edge %d-%d listed twice", ErrInvariant, v.id, u.id)
		}
		seen[nbr] = struct{}{}
		sum += u.weight
		return bad == nil
	})
	if bad != nil {
		return bad
	}
	if sum != v.nw {
		return fmt.Errorf("%w: id %d nw %d != weight+neighbors %d", ErrInvariant, v.id, v.nw, sum)
	}

	return nil
}

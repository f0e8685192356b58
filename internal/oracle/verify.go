// SPDX-License-Identifier: MIT
// Package: vicinity/internal/oracle
//
// verify.go - Graph vs Model comparison.

package oracle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vicinity/neighborhood"
)

var (
	// ErrMismatch indicates the Graph diverged from the Model.
	ErrMismatch = errors.New("oracle: graph and model disagree")

	// ErrExhausted indicates a batch asked for more edges or deletions than exist.
	ErrExhausted = errors.New("oracle: request exceeds available items")
)

// Verify compares g with m:
//  1. node and edge counts;
//  2. the maximum: g's top vertex must carry the model's maximal nw, and the
//     model must agree on that vertex's nw;
//  3. with full set, every vertex's nw and the graph's own Validate.
//
// Complexity: O(n) for counts and max, O(n log n + m) with full.
func Verify(g *neighborhood.Graph, m *Model, full bool) error {
	if g.NodeCount() != m.NodeCount() || g.EdgeCount() != m.EdgeCount() {
		return fmt.Errorf("%w: amounts graph=(%d nodes, %d edges) model=(%d nodes, %d edges)",
			ErrMismatch, g.NodeCount(), g.EdgeCount(), m.NodeCount(), m.EdgeCount())
	}

	want, ok := m.MaxNeighborhoodWeight()
	top, gotOK := g.MaxNeighborhoodWeight()
	if ok != gotOK {
		return fmt.Errorf("%w: maximum presence graph=%t model=%t", ErrMismatch, gotOK, ok)
	}
	if ok {
		nw, _ := m.NeighborhoodWeight(top.ID)
		if top.NeighborhoodWeight != want || nw != want {
			return fmt.Errorf("%w: maximum graph=(id %d, nw %d) model max=%d model nw(%d)=%d",
				ErrMismatch, top.ID, top.NeighborhoodWeight, want, top.ID, nw)
		}
	}

	if !full {
		return nil
	}
	for _, id := range m.IDs() {
		want, _ := m.NeighborhoodWeight(id)
		got, ok := g.NeighborhoodWeight(id)
		if !ok || got != want {
			return fmt.Errorf("%w: nw(%d) graph=%d (present %t) model=%d", ErrMismatch, id, got, ok, want)
		}
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMismatch, err)
	}

	return nil
}

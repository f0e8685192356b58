// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// api.go - Edge, Constructor and the BuildGraph orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vicinity/neighborhood"
)

// Edge is one undirected edge between two vertex ids.
type Edge struct {
	U, V int64
}

// key normalizes the edge so (u,v) and (v,u) compare equal.
func (e Edge) key() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Constructor emits loop-free edges over ids using the resolved config.
// Constructors must validate early and return sentinel errors, never panic.
type Constructor func(ids []int64, cfg builderConfig) ([]Edge, error)

// Generate runs the constructors over ids in order and returns the distinct
// edges in first-emitted order.
// Complexity: Σ constructor cost + O(E) for de-duplication.
func Generate(ids []int64, bopts []BuilderOption, cons ...Constructor) ([]Edge, error) {
	cfg := newBuilderConfig(bopts...)
	seen := make(map[Edge]struct{})
	var out []Edge

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		edges, err := fn(ids, cfg)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		for _, e := range edges {
			k := e.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, e)
		}
	}

	return out, nil
}

// BuildGraph creates a neighborhood.Graph over vs with gopts, generates edges
// from cons with bopts, and adds every edge. It returns the graph and the
// applied edges in insertion order.
//
// Errors: neighborhood.New errors (ErrDuplicateID) and constructor sentinels,
// wrapped with "BuildGraph: %w".
func BuildGraph(vs []neighborhood.Vertex, gopts []neighborhood.GraphOption, bopts []BuilderOption, cons ...Constructor) (*neighborhood.Graph, []Edge, error) {
	g, err := neighborhood.New(vs, gopts...)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildGraph: %w", err)
	}

	ids := make([]int64, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	edges, err := Generate(ids, bopts, cons...)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildGraph: %w", err)
	}

	for _, e := range edges {
		if !g.AddEdge(e.U, e.V) {
			return nil, nil, fmt.Errorf("BuildGraph: AddEdge(%d,%d) rejected: %w", e.U, e.V, ErrConstructFailed)
		}
	}

	return g, edges, nil
}

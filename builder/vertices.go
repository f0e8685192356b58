// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// vertices.go - Vertices(n) vertex-set generator.

package builder

import (
	"github.com/katalvlaran/vicinity/neighborhood"
)

const methodVertices = "Vertices"

// Vertices returns n vertices with distinct ids.
//
// Ids come from the IDFn (default 1..n) or, with WithRandomIDs(limit), are n
// distinct draws from [0, limit). Weights come from the WeightFn.
//
// Errors:
//   - ErrTooFewVertices if n < 0.
//   - ErrNeedRandSource if WithRandomIDs is set without an RNG.
//   - ErrConstructFailed if limit < n or the IDFn repeats an id.
//
// Complexity: O(n) expected.
func Vertices(n int, opts ...BuilderOption) ([]neighborhood.Vertex, error) {
	if n < 0 {
		return nil, builderErrorf(methodVertices, ErrTooFewVertices, "n=%d < 0", n)
	}
	cfg := newBuilderConfig(opts...)

	ids, err := drawIDs(n, cfg)
	if err != nil {
		return nil, err
	}

	out := make([]neighborhood.Vertex, n)
	for i, id := range ids {
		out[i] = neighborhood.Vertex{ID: id, Weight: cfg.weightFn(cfg.rng)}
	}

	return out, nil
}

// drawIDs resolves the id list for n vertices and checks distinctness.
func drawIDs(n int, cfg builderConfig) ([]int64, error) {
	ids := make([]int64, 0, n)
	seen := make(map[int64]struct{}, n)

	if cfg.randomIDs > 0 {
		if cfg.rng == nil {
			return nil, builderErrorf(methodVertices, ErrNeedRandSource, "random ids")
		}
		if cfg.randomIDs < int64(n) {
			return nil, builderErrorf(methodVertices, ErrConstructFailed, "limit=%d < n=%d", cfg.randomIDs, n)
		}
		// Rejection sampling; limit >= n guarantees termination.
		for len(ids) < n {
			id := cfg.rng.Int63n(cfg.randomIDs)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		return ids, nil
	}

	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, dup := seen[id]; dup {
			return nil, builderErrorf(methodVertices, ErrConstructFailed, "IDFn repeated id %d at index %d", id, i)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

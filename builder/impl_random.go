// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// impl_random.go - RandomEdges(m) and RandomAttempts(k) constructors.
//
// RandomEdges draws endpoints uniformly, rejects loops and repeats, and stops
// at exactly m distinct edges. Above half density it shuffles the full pair
// list instead of rejection sampling.
//
// RandomAttempts makes k independent endpoint draws and keeps the ones that
// are neither loops nor repeats. The measurement run uses it.

package builder

const (
	// MethodRandomEdges is the error prefix for RandomEdges.
	MethodRandomEdges = "RandomEdges"
	// MethodRandomAttempts is the error prefix for RandomAttempts.
	MethodRandomAttempts = "RandomAttempts"
)

// RandomEdges emits exactly m distinct loop-free edges chosen uniformly.
//
// Errors:
//   - ErrTooFewVertices if m < 0.
//   - ErrTooManyEdges if m > n(n-1)/2.
//   - ErrNeedRandSource if m > 0 and no RNG is configured.
//
// Complexity: O(m) expected below half density, O(n²) above.
func RandomEdges(m int) Constructor {
	return func(ids []int64, cfg builderConfig) ([]Edge, error) {
		n := len(ids)
		maxEdges := n * (n - 1) / 2
		switch {
		case m < 0:
			return nil, builderErrorf(MethodRandomEdges, ErrTooFewVertices, "m=%d < 0", m)
		case m > maxEdges:
			return nil, builderErrorf(MethodRandomEdges, ErrTooManyEdges, "m=%d > n(n-1)/2=%d", m, maxEdges)
		case m == 0:
			return nil, nil
		case cfg.rng == nil:
			return nil, builderErrorf(MethodRandomEdges, ErrNeedRandSource, "m=%d", m)
		}

		if 2*m > maxEdges {
			all, _ := Complete()(ids, cfg)
			cfg.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
			return all[:m], nil
		}

		seen := make(map[Edge]struct{}, m)
		out := make([]Edge, 0, m)
		for len(out) < m {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if i == j {
				continue
			}
			e := Edge{U: ids[i], V: ids[j]}
			if _, dup := seen[e.key()]; dup {
				continue
			}
			seen[e.key()] = struct{}{}
			out = append(out, e)
		}

		return out, nil
	}
}

// RandomAttempts performs k endpoint draws and keeps the loop-free, first-seen ones.
// The result usually has fewer than k edges.
func RandomAttempts(k int) Constructor {
	return func(ids []int64, cfg builderConfig) ([]Edge, error) {
		switch {
		case k < 0:
			return nil, builderErrorf(MethodRandomAttempts, ErrTooFewVertices, "k=%d < 0", k)
		case k == 0 || len(ids) == 0:
			return nil, nil
		case cfg.rng == nil:
			return nil, builderErrorf(MethodRandomAttempts, ErrNeedRandSource, "k=%d", k)
		}

		n := len(ids)
		seen := make(map[Edge]struct{}, k)
		out := make([]Edge, 0, k)
		for a := 0; a < k; a++ {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if i == j {
				continue
			}
			e := Edge{U: ids[i], V: ids[j]}
			if _, dup := seen[e.key()]; dup {
				continue
			}
			seen[e.key()] = struct{}{}
			out = append(out, e)
		}

		return out, nil
	}
}

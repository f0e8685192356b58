// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors validate and panic on meaningless inputs. Determinism is
// explicit: randomness only enters through WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// IDFn maps a zero-based vertex index to a vertex id. It must be pure.
type IDFn func(idx int) int64

// WeightFn draws one vertex weight. rng may be nil when the config has none.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeight is the vertex weight used when no WeightFn is configured.
const DefaultWeight int64 = 1

// SequentialIDs returns first, first+1, first+2, ...
func SequentialIDs(first int64) IDFn {
	return func(idx int) int64 { return first + int64(idx) }
}

// BuilderOption mutates a builderConfig before a constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig aggregates every knob. Constructors receive it by value.
type builderConfig struct {
	idFn      IDFn
	randomIDs int64 // >0: draw distinct ids in [0, randomIDs) instead of idFn
	weightFn  WeightFn
	rng       *rand.Rand
}

// newBuilderConfig applies opts over deterministic defaults: ids 1..n,
// weight DefaultWeight, no RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     SequentialIDs(1),
		weightFn: func(*rand.Rand) int64 { return DefaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed attaches a deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches r. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithIDScheme sets the index→id mapping. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
		c.randomIDs = 0
	}
}

// WithRandomIDs draws n distinct ids uniformly from [0, limit). Requires an RNG.
// Panics if limit < 1.
func WithRandomIDs(limit int64) BuilderOption {
	if limit < 1 {
		panic(fmt.Sprintf("builder: WithRandomIDs(limit=%d)", limit))
	}
	return func(c *builderConfig) { c.randomIDs = limit }
}

// WithWeightFn sets the weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight gives every vertex weight w.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(func(*rand.Rand) int64 { return w })
}

// WithWeightRange draws weights uniformly from [lo, hi]. Without an RNG every
// weight is lo. Panics if hi < lo.
func WithWeightRange(lo, hi int64) BuilderOption {
	if hi < lo {
		panic(fmt.Sprintf("builder: WithWeightRange(lo=%d > hi=%d)", lo, hi))
	}
	return WithWeightFn(func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	})
}

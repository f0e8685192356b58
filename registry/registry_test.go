// SPDX-License-Identifier: MIT
package registry_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vicinity/registry"
)

// ids returns every id stored in r, sorted.
func ids[V any](r *registry.Registry[V]) []int64 {
	out := []int64{}
	r.Each(func(id int64, _ V) bool {
		out = append(out, id)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestRegistry_Sizing(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		opts    []registry.Option
		buckets int
	}{
		{"default load", 10, nil, 20},
		{"odd count rounds up", 7, nil, 14},
		{"custom load", 10, []registry.Option{registry.WithLoadFactor(0.75)}, 14},
		{"full load", 3, []registry.Option{registry.WithLoadFactor(1)}, 3},
		{"empty", 0, nil, 1},
		{"negative", -5, nil, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := registry.New[int](tc.n, append(tc.opts, registry.WithSeed(1))...)
			assert.Equal(t, tc.buckets, r.Buckets())
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestRegistry_HashParamsInRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		r := registry.New[int](8, registry.WithSeed(seed))
		a, b, p := r.Params()
		require.GreaterOrEqual(t, a, uint64(1))
		require.Less(t, a, p)
		require.Less(t, b, p)
	}
}

func TestRegistry_SeedIsDeterministic(t *testing.T) {
	a1, b1, _ := registry.New[int](4, registry.WithSeed(9)).Params()
	a2, b2, _ := registry.New[int](4, registry.WithSeed(9)).Params()
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestRegistry_InsertLookupRemove(t *testing.T) {
	r := registry.New[string](4, registry.WithSeed(2))

	_, err := r.Insert(1, "one")
	require.NoError(t, err)
	_, err = r.Insert(-7, "minus seven")
	require.NoError(t, err)
	_, err = r.Insert(1<<40, "big")
	require.NoError(t, err)

	_, err = r.Insert(1, "again")
	require.ErrorIs(t, err, registry.ErrDuplicateID)
	require.Equal(t, 3, r.Len())

	v, ok := r.Lookup(-7)
	require.True(t, ok)
	assert.Equal(t, "minus seven", v)

	v, ok = r.Lookup(2)
	assert.False(t, ok)
	assert.Equal(t, "", v)

	assert.True(t, r.Remove(1))
	assert.False(t, r.Remove(1))
	assert.False(t, r.Contains(1))
	assert.Equal(t, []int64{-7, 1 << 40}, ids(r))
}

func TestRegistry_RemoveHandle(t *testing.T) {
	// One bucket forces every id into the same chain: head, middle and tail removals.
	r := registry.New[int](1, registry.WithLoadFactor(1), registry.WithSeed(3))
	require.Equal(t, 1, r.Buckets())

	hs := make([]registry.Handle, 5)
	for i := range hs {
		var err error
		hs[i], err = r.Insert(int64(i), i)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{5}, r.ChainLengths())

	require.True(t, r.RemoveHandle(hs[2])) // middle
	require.True(t, r.RemoveHandle(hs[4])) // chain head (inserted last)
	require.True(t, r.RemoveHandle(hs[0])) // chain tail
	assert.False(t, r.RemoveHandle(hs[0]), "already removed")
	assert.False(t, r.RemoveHandle(registry.NoHandle))
	assert.False(t, r.RemoveHandle(100))

	assert.Equal(t, []int64{1, 3}, ids(r))
	for _, id := range []int64{1, 3} {
		v, ok := r.Lookup(id)
		require.True(t, ok)
		assert.Equal(t, int(id), v)
	}
}

func TestRegistry_EachStopsEarly(t *testing.T) {
	r := registry.New[int](10, registry.WithSeed(4))
	for i := 0; i < 10; i++ {
		_, _ = r.Insert(int64(i), i)
	}
	seen := 0
	r.Each(func(int64, int) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

func TestRegistry_RandomAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 500
	r := registry.New[int64](n, registry.WithSeed(11))
	model := map[int64]int64{}

	for step := 0; step < 5000; step++ {
		id := rng.Int63n(2000) - 1000
		switch rng.Intn(3) {
		case 0:
			_, err := r.Insert(id, id*2)
			if _, dup := model[id]; dup {
				require.ErrorIs(t, err, registry.ErrDuplicateID)
			} else {
				require.NoError(t, err)
				model[id] = id * 2
			}
		case 1:
			_, had := model[id]
			require.Equal(t, had, r.Remove(id))
			delete(model, id)
		default:
			v, ok := r.Lookup(id)
			want, had := model[id]
			require.Equal(t, had, ok)
			require.Equal(t, want, v)
		}
		require.Equal(t, len(model), r.Len())
	}

	total := 0
	for _, l := range r.ChainLengths() {
		total += l
	}
	assert.Equal(t, len(model), total)
}

func TestRegistry_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { registry.WithLoadFactor(0) })
	assert.Panics(t, func() { registry.WithLoadFactor(1.5) })
	assert.Panics(t, func() { registry.WithRand(nil) })
}

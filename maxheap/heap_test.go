// SPDX-License-Identifier: MIT
package maxheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vicinity/maxheap"
)

// HeapSuite exercises the positional heap contracts.
type HeapSuite struct {
	suite.Suite
}

func TestHeapSuite(t *testing.T) {
	suite.Run(t, new(HeapSuite))
}

// TestEmpty verifies Peek on an empty heap and ErrFull on zero capacity.
func (s *HeapSuite) TestEmpty() {
	h := maxheap.New[string](0)
	hd, ok := h.Peek()
	s.False(ok)
	s.Equal(maxheap.NoHandle, hd)

	_, err := h.Insert(1, "x")
	s.ErrorIs(err, maxheap.ErrFull)
	s.NoError(h.Validate())
}

// TestInsertPeek verifies the root always holds the maximum key.
func (s *HeapSuite) TestInsertPeek() {
	h := maxheap.New[string](4)
	a, err := h.Insert(3, "a")
	s.Require().NoError(err)
	b, err := h.Insert(7, "b")
	s.Require().NoError(err)
	_, err = h.Insert(1, "c")
	s.Require().NoError(err)

	top, ok := h.Peek()
	s.True(ok)
	s.Equal(b, top)
	s.Equal("b", h.Payload(top))
	s.Equal(int64(7), h.Key(top))
	s.Equal(0, h.Position(b))
	s.NotEqual(a, b)
	s.Equal(3, h.Len())
	s.Equal(4, h.Cap())
	s.NoError(h.Validate())
}

// TestCapacityExhausted verifies deletes do not free capacity for new handles.
func (s *HeapSuite) TestCapacityExhausted() {
	h := maxheap.New[int](2)
	a, _ := h.Insert(1, 1)
	_, _ = h.Insert(2, 2)
	s.True(h.Delete(a))

	_, err := h.Insert(3, 3)
	s.ErrorIs(err, maxheap.ErrFull)
}

// TestUpdateBothDirections verifies increase sifts up and decrease sifts down.
func (s *HeapSuite) TestUpdateBothDirections() {
	h := maxheap.New[int](5)
	hs := make([]maxheap.Handle, 5)
	for i := range hs {
		hs[i], _ = h.Insert(int64(10*(i+1)), i)
	}
	// Raise the smallest to the top.
	s.True(h.Update(hs[0], 100))
	top, _ := h.Peek()
	s.Equal(hs[0], top)
	s.NoError(h.Validate())

	// Sink it to the bottom again.
	s.True(h.Update(hs[0], -1))
	top, _ = h.Peek()
	s.Equal(hs[4], top)
	s.NoError(h.Validate())

	// Same key is a no-op that still succeeds.
	s.True(h.Update(hs[4], h.Key(hs[4])))
	s.NoError(h.Validate())
}

// TestDeleteCases covers deleting the last slot, the root, a middle slot and a stale handle.
func (s *HeapSuite) TestDeleteCases() {
	h := maxheap.New[int](7)
	hs := make([]maxheap.Handle, 7)
	for i := range hs {
		hs[i], _ = h.Insert(int64(i), i)
	}

	// Find whichever handle currently sits at the last index and delete it.
	var last maxheap.Handle
	for _, hd := range hs {
		if h.Position(hd) == h.Len()-1 {
			last = hd
		}
	}
	s.True(h.Delete(last))
	s.Equal(-1, h.Position(last))
	s.False(h.Contains(last))
	s.NoError(h.Validate())

	root, _ := h.Peek()
	s.True(h.Delete(root))
	s.NoError(h.Validate())

	for _, hd := range hs {
		if h.Contains(hd) && h.Position(hd) == 1 {
			s.True(h.Delete(hd))
			break
		}
	}
	s.NoError(h.Validate())
	s.Equal(4, h.Len())

	s.False(h.Delete(root), "stale handle")
	s.False(h.Update(root, 50), "stale handle")
	s.False(h.Delete(maxheap.Handle(99)), "never issued")
	s.False(h.Contains(maxheap.NoHandle))
}

// TestDeleteRelocatedMovesUp builds a heap where the slot moved into the hole
// must sift up, the case a down-only repair gets wrong.
func (s *HeapSuite) TestDeleteRelocatedMovesUp() {
	//          100
	//        /     \
	//      50       90
	//     /  \     /
	//   10    5  80
	h := maxheap.New[int](6)
	keys := []int64{100, 50, 90, 10, 5, 80}
	hs := make([]maxheap.Handle, len(keys))
	for i, k := range keys {
		hs[i], _ = h.Insert(k, i)
	}
	s.Require().NoError(h.Validate())

	// Delete the slot under 50's subtree; 80 (last) is relocated there and must climb above 50.
	var victim maxheap.Handle
	for i, k := range keys {
		if k == 10 {
			victim = hs[i]
		}
	}
	s.True(h.Delete(victim))
	s.NoError(h.Validate())
}

// TestPopOrder drains the heap via Peek+Delete and checks descending keys.
func (s *HeapSuite) TestPopOrder() {
	r := rand.New(rand.NewSource(3))
	const n = 200
	h := maxheap.New[int](n)
	want := make([]int64, n)
	for i := 0; i < n; i++ {
		k := int64(r.Intn(50)) // plenty of ties
		want[i] = k
		_, err := h.Insert(k, i)
		s.Require().NoError(err)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] > want[j] })

	got := make([]int64, 0, n)
	for h.Len() > 0 {
		top, _ := h.Peek()
		got = append(got, h.Key(top))
		s.Require().True(h.Delete(top))
		s.Require().NoError(h.Validate())
	}
	s.Equal(want, got)
}

// TestRandomizedInvariants mixes updates and deletes at arbitrary positions and
// validates order, positions and the max key after every step.
func TestRandomizedInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		n := 1 + r.Intn(64)
		h := maxheap.New[int](n)
		keys := map[maxheap.Handle]int64{}
		for i := 0; i < n; i++ {
			k := int64(r.Intn(100)) - 50
			hd, err := h.Insert(k, i)
			require.NoError(t, err)
			keys[hd] = k
			require.NoError(t, h.Validate())
		}

		for step := 0; step < 4*n && len(keys) > 0; step++ {
			live := make([]maxheap.Handle, 0, len(keys))
			for hd := range keys {
				live = append(live, hd)
			}
			sort.Slice(live, func(i, j int) bool { return live[i] < live[j] })
			hd := live[r.Intn(len(live))]

			if r.Intn(4) == 0 {
				require.True(t, h.Delete(hd))
				delete(keys, hd)
			} else {
				k := keys[hd] + int64(r.Intn(41)-20)
				require.True(t, h.Update(hd, k))
				keys[hd] = k
			}
			require.NoError(t, h.Validate(), "seed=%d step=%d", seed, step)
			require.Equal(t, len(keys), h.Len())

			if len(keys) > 0 {
				var best int64 = -1 << 62
				for _, k := range keys {
					if k > best {
						best = k
					}
				}
				top, ok := h.Peek()
				require.True(t, ok)
				require.Equal(t, best, h.Key(top), "seed=%d step=%d", seed, step)
			}
		}
	}
}

// TestExhaustiveSmallPermutations inserts every permutation of 1..6 and
// deletes from every position, validating the index arithmetic each time.
func TestExhaustiveSmallPermutations(t *testing.T) {
	perm := []int64{1, 2, 3, 4, 5, 6}
	var permute func(k int)
	permute = func(k int) {
		if k == len(perm) {
			for del := 0; del < len(perm); del++ {
				h := maxheap.New[int](len(perm))
				hs := make([]maxheap.Handle, len(perm))
				for i, key := range perm {
					hs[i], _ = h.Insert(key, i)
				}
				require.NoError(t, h.Validate())
				require.True(t, h.Delete(hs[del]))
				require.NoError(t, h.Validate(), "perm=%v del=%d", perm, del)
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
}

func TestNewNegativeCapacityPanics(t *testing.T) {
	require.Panics(t, func() { maxheap.New[int](-1) })
}

package Trees

import (
	"cmp"
	"slices"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shot struct {
	k   int
	red bool
}

// snapshot is the pre-order sequence of keys and colors, which determines the shape of a search tree.
func snapshot(tree *RBTree[int, uint32]) (s []shot) {
	tree.shape().PreOrder(tree.root, func(i uint32) bool {
		s = append(s, shot{tree.vs[i-1], tree.isRed(i)})
		return true
	})
	return
}

func ascending(t *testing.T, n int) *RBTree[int, uint32] {
	t.Helper()
	tree := New[int, uint32](uint32(n))
	for i := 1; i <= n; i++ {
		require.NoError(t, tree.Insert(i))
		require.NoError(t, tree.Verify())
	}
	return tree
}

func TestScenarios(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		tree := ascending(t, 7)
		assert.LessOrEqual(t, tree.Height(), 3)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(tree.All()))
	})

	t.Run("descending", func(t *testing.T) {
		tree := New[int, uint32](0)
		for i := 7; i >= 1; i-- {
			require.NoError(t, tree.Insert(i))
			require.NoError(t, tree.Verify())
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(tree.All()))
		assert.Equal(t, 7, tree.Count())
	})

	t.Run("erase middle", func(t *testing.T) {
		tree := ascending(t, 7)
		require.NoError(t, tree.Erase(4))
		assert.Equal(t, 6, tree.Count())
		assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, slices.Collect(tree.All()))
		assert.NoError(t, tree.Verify())
	})

	t.Run("duplicate", func(t *testing.T) {
		tree := New[int, uint32](0)
		require.NoError(t, tree.Insert(5))
		assert.ErrorIs(t, tree.Insert(5), ErrDuplicateKey)
		assert.Equal(t, 1, tree.Count())
	})

	t.Run("erase from empty", func(t *testing.T) {
		tree := New[int, uint32](0)
		assert.ErrorIs(t, tree.Erase(10), ErrKeyNotFound)
		assert.Equal(t, 0, tree.Count())
	})

	t.Run("erase ascending", func(t *testing.T) {
		tree := ascending(t, 7)
		for i := 1; i <= 7; i++ {
			require.NoError(t, tree.Erase(i))
			require.NoError(t, tree.Verify())
			assert.Equal(t, 7-i, tree.Count())
		}
		assert.Zero(t, tree.root)
	})
}

func TestTree_EraseAbsentKeepsShape(t *testing.T) {
	tree := New[int, uint32](0)
	for _, b := range randomKeys(500) {
		tree.Insert(2 * b)
	}
	before := snapshot(tree)
	for i := range 100 {
		assert.ErrorIs(t, tree.Erase(2*i+1), ErrKeyNotFound)
	}
	assert.Equal(t, before, snapshot(tree))
}

func TestTree_LeafRoundTrip(t *testing.T) {
	tree := ascending(t, 7)
	before := snapshot(tree)
	// 0 becomes a red child of the black leaf 1, so neither operation rebalances.
	require.NoError(t, tree.Insert(0))
	require.NoError(t, tree.Erase(0))
	assert.Equal(t, before, snapshot(tree))
}

type record struct {
	id      int
	payload string
}

func TestTree_DuplicateKeepsData(t *testing.T) {
	tree := NewFunc[record, uint32](0, func(a, b record) int { return cmp.Compare(a.id, b.id) })
	require.NoError(t, tree.Insert(record{1, "first"}))
	require.NoError(t, tree.Emplace(func(r *record) { r.id, r.payload = 2, "second" }))
	assert.ErrorIs(t, tree.Insert(record{1, "other"}), ErrDuplicateKey)
	assert.ErrorIs(t, tree.Emplace(func(r *record) { r.id, r.payload = 2, "other" }), ErrDuplicateKey)
	assert.Equal(t, 2, tree.Count())
	assert.Equal(t, "first", tree.Get(record{id: 1}).payload)
	assert.Equal(t, "second", tree.Get(record{id: 2}).payload)
	assert.Nil(t, tree.Get(record{id: 3}))
}

func TestTree_CountLaw(t *testing.T) {
	tree := New[int, uint32](0)
	want := 0
	for range 20000 {
		k := rg.Intn(2000)
		if rg.Intn(3) == 0 {
			if tree.Erase(k) == nil {
				want--
			}
		} else if tree.Insert(k) == nil {
			want++
		}
	}
	assert.Equal(t, want, tree.Count())
	assert.Equal(t, want, tree.CountNodes())
	assert.NoError(t, tree.Verify())
	assert.LessOrEqual(t, tree.Levels(), 2*tree.BlackHeight())
}

func TestTree_Trace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	tree := New[int, uint8](0, WithLogger(logger))
	for i := 1; i <= 3; i++ {
		require.NoError(t, tree.Insert(i))
	}
	var rotated bool
	for _, e := range hook.AllEntries() {
		if e.Data["op"] == "insert" && e.Message == "black uncle, outer child" {
			rotated = true
			assert.Equal(t, 3, e.Data["key"])
		}
	}
	assert.True(t, rotated, "no rotation traced")

	hook.Reset()
	require.NoError(t, tree.Erase(1))
	require.NoError(t, tree.Erase(3))
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "erase", hook.LastEntry().Data["op"])
}

func TestLocked(t *testing.T) {
	tree := Lock(New[int, uint32](0))
	wg := sync.WaitGroup{}
	for k := range 8 {
		wg.Add(1)
		go func(l, h int) {
			defer wg.Done()
			for j := l; j < h; j++ {
				assert.NoError(t, tree.Insert(j))
			}
			for j := l; j < h; j += 2 {
				assert.NoError(t, tree.Erase(j))
			}
			for j := l + 1; j < h; j += 2 {
				if v, ok := tree.Load(j); !ok || v != j {
					t.Errorf("key %d missing", j)
				}
			}
		}(k*1000, (k+1)*1000)
	}
	wg.Wait()
	assert.Equal(t, 4000, tree.Count())
	assert.False(t, tree.Corrupt())
	m, _ := tree.Max()
	assert.Equal(t, 7999, m)
}

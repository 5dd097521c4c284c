package TreeMap

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-rbtree/Maps"
	"github.com/g-m-twostay/go-rbtree/Trees"
	"golang.org/x/exp/constraints"
)

type entry[K any, V any] struct {
	k K
	v V
}

// TreeMap is a Maps.Map whose pairs are kept in a red-black tree ordered by key only.
type TreeMap[K any, V any, S constraints.Unsigned] struct {
	t *Trees.RBTree[entry[K, V], S]
}

func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S, opts ...Trees.Option) *TreeMap[K, V, S] {
	return NewFunc[K, V, S](hint, cmp.Compare[K], opts...)
}

func NewFunc[K any, V any, S constraints.Unsigned](hint S, compare func(a, b K) int, opts ...Trees.Option) *TreeMap[K, V, S] {
	return &TreeMap[K, V, S]{Trees.NewFunc[entry[K, V], S](hint, func(a, b entry[K, V]) int {
		return compare(a.k, b.k)
	}, opts...)}
}

// Put [Maps.Map.Put]. Fails when the map has reached the capacity of S.
func (u *TreeMap[K, V, S]) Put(k K, v V) bool {
	return u.t.Insert(entry[K, V]{k, v}) == nil
}

// Store [Maps.Map.Store]. Panics with the wrapped Trees.ErrAllocation when a new key doesn't fit.
func (u *TreeMap[K, V, S]) Store(k K, v V) (old V, replaced bool) {
	if p := u.t.Get(entry[K, V]{k: k}); p != nil {
		old, p.v = p.v, v
		return old, true
	}
	if err := u.t.Insert(entry[K, V]{k, v}); err != nil {
		panic(err)
	}
	return
}

func (u *TreeMap[K, V, S]) HasKey(k K) bool {
	return u.t.Has(entry[K, V]{k: k})
}

func (u *TreeMap[K, V, S]) Get(k K) (V, bool) {
	if p := u.t.Get(entry[K, V]{k: k}); p != nil {
		return p.v, true
	}
	return *new(V), false
}

func (u *TreeMap[K, V, S]) Remove(k K) bool {
	return u.t.Remove(entry[K, V]{k: k})
}

// Take the pair with the smallest key.
func (u *TreeMap[K, V, S]) Take() (K, V, bool) {
	e, ok := u.t.Min()
	if ok {
		u.t.Remove(e)
	}
	return e.k, e.v, ok
}

// Keys in ascending order.
func (u *TreeMap[K, V, S]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		u.t.InOrder(func(e entry[K, V]) bool { return yield(e.k) })
	}
}

// Values in ascending order of their keys.
func (u *TreeMap[K, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		u.t.InOrder(func(e entry[K, V]) bool { return yield(e.v) })
	}
}

// Pairs in ascending order of keys.
func (u *TreeMap[K, V, S]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		u.t.InOrder(func(e entry[K, V]) bool { return yield(e.k, e.v) })
	}
}

func (u *TreeMap[K, V, S]) Size() uint {
	return uint(u.t.Count())
}

// Corrupt reports whether the underlying tree is corrupt.
func (u *TreeMap[K, V, S]) Corrupt() bool {
	return u.t.Corrupt()
}

var _ Maps.Map[int, int] = (*TreeMap[int, int, uint])(nil)

package Trees

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Locked guards an RBTree with a reader-writer lock. Mutations hold the write lock; queries
// and traversals hold the read lock for their whole duration, so visitors must not call back
// into the same Locked tree's mutators.
type Locked[K any, S constraints.Unsigned] struct {
	mu sync.RWMutex
	t  *RBTree[K, S]
}

// Lock t. t mustn't be used directly afterwards.
func Lock[K any, S constraints.Unsigned](t *RBTree[K, S]) *Locked[K, S] {
	return &Locked[K, S]{t: t}
}

func (u *Locked[K, S]) Insert(k K) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(k)
}

func (u *Locked[K, S]) Emplace(init func(*K)) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Emplace(init)
}

func (u *Locked[K, S]) Erase(k K) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Erase(k)
}

func (u *Locked[K, S]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Clear()
}

func (u *Locked[K, S]) Has(k K) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(k)
}

// Load a copy of the stored key equal to k.
func (u *Locked[K, S]) Load(k K) (K, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if p := u.t.Get(k); p != nil {
		return *p, true
	}
	return *new(K), false
}

func (u *Locked[K, S]) Min() (K, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Min()
}

func (u *Locked[K, S]) Max() (K, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Max()
}

func (u *Locked[K, S]) Predecessor(k K, strict bool) (K, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Predecessor(k, strict)
}

func (u *Locked[K, S]) Successor(k K, strict bool) (K, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Successor(k, strict)
}

func (u *Locked[K, S]) Count() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Count()
}

func (u *Locked[K, S]) Height() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Height()
}

func (u *Locked[K, S]) InOrder(f func(K) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.InOrder(f)
}

func (u *Locked[K, S]) Corrupt() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Corrupt()
}

var (
	_ Tree[int] = (*RBTree[int, uint32])(nil)
	_ Tree[int] = (*Locked[int, uint32])(nil)
)

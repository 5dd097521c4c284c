package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-rbtree/Sets"
	"github.com/g-m-twostay/go-rbtree/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered Sets.Set. Range and Take follow the element order.
type TreeSet[E any, S constraints.Unsigned] struct {
	t *Trees.RBTree[E, S]
}

func New[E cmp.Ordered, S constraints.Unsigned](hint S) *TreeSet[E, S] {
	return &TreeSet[E, S]{Trees.New[E, S](hint)}
}

func NewFunc[E any, S constraints.Unsigned](hint S, compare func(a, b E) int) *TreeSet[E, S] {
	return &TreeSet[E, S]{Trees.NewFunc[E, S](hint, compare)}
}

func (u *TreeSet[E, S]) Put(e E) bool {
	return u.t.Add(e)
}

func (u *TreeSet[E, S]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *TreeSet[E, S]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E, S]) Size() uint {
	return uint(u.t.Count())
}

// Take the smallest element.
func (u *TreeSet[E, S]) Take() (E, bool) {
	e, ok := u.t.Min()
	if ok {
		u.t.Remove(e)
	}
	return e, ok
}

// Range in ascending order.
func (u *TreeSet[E, S]) Range(f func(E) bool) {
	u.t.InOrder(f)
}

// PutAll elements of o, returning how many were new.
func (u *TreeSet[E, S]) PutAll(o Sets.Set[E]) (n uint) {
	o.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// Floor is the greatest element less than or equal to e.
func (u *TreeSet[E, S]) Floor(e E) (E, bool) {
	return u.t.Predecessor(e, false)
}

// Ceiling is the smallest element greater than or equal to e.
func (u *TreeSet[E, S]) Ceiling(e E) (E, bool) {
	return u.t.Successor(e, false)
}

var _ Sets.Set[int] = (*TreeSet[int, uint])(nil)

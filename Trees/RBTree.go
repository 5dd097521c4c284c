package Trees

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-rbtree/Queues"
	"github.com/g-m-twostay/go-rbtree/Trees/walk"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree of unique keys. Nodes live in an arena addressed by S, so S
// bounds the number of nodes the tree can ever hold at once; pick it as a wide upper bound
// of the tree's size. Released slots are reused before the arena grows.
// The zero value isn't usable, create trees with New, NewFunc, From or FromFunc.
// An RBTree isn't safe for concurrent use, see Locked.
type RBTree[K any, S constraints.Unsigned] struct {
	base[K, S]
	// Cmp returns a negative number if a<b, 0 if a==b, a positive number if a>b. See cmp.Compare.
	Cmp func(a, b K) int
}

// New tree ordered by cmp.Compare with room for hint nodes before growing.
func New[K cmp.Ordered, S constraints.Unsigned](hint S, opts ...Option) *RBTree[K, S] {
	return NewFunc[K, S](hint, cmp.Compare[K], opts...)
}

// NewFunc is New for keys ordered by compare, which must be a strict weak ordering whose
// equivalence is the key equality.
func NewFunc[K any, S constraints.Unsigned](hint S, compare func(a, b K) int, opts ...Option) *RBTree[K, S] {
	return &RBTree[K, S]{makeBase[K, S](hint, makeConfig(opts)), compare}
}

// From builds a tree from a strictly increasing slice in O(n). The slice is copied.
func From[K cmp.Ordered, S constraints.Unsigned](sorted []K, opts ...Option) (*RBTree[K, S], error) {
	return FromFunc[K, S](sorted, cmp.Compare[K], opts...)
}

// FromFunc is From for keys ordered by compare.
func FromFunc[K any, S constraints.Unsigned](sorted []K, compare func(a, b K) int, opts ...Option) (*RBTree[K, S], error) {
	for i := 1; i < len(sorted); i++ {
		if compare(sorted[i-1], sorted[i]) >= 0 {
			return nil, &InvalidSliceError{i, sorted[i-1], sorted[i]}
		}
	}
	c := makeConfig(opts)
	n := S(len(sorted))
	if int(n) != len(sorted) || (c.limit != 0 && uint64(len(sorted)) > c.limit) {
		return nil, errors.Wrapf(ErrAllocation, "from %d keys", len(sorted))
	}
	u := &RBTree[K, S]{makeBase[K, S](n, c), compare}
	u.vs = append(u.vs, sorted...)
	u.ifs = u.ifs[:len(sorted)+1]
	u.buildIfs(n)
	return u, nil
}

// locate descends from the root towards k. It returns the slot holding k, or 0 together with
// the parent under which k would be linked and the comparison result at that parent.
func (u *RBTree[K, S]) locate(k *K) (hit, parent S, order int) {
	for cur := u.root; cur != 0; {
		parent = cur
		if order = u.Cmp(*k, u.vs[cur-1]); order < 0 {
			cur = u.ifs[cur].l
		} else if order > 0 {
			cur = u.ifs[cur].r
		} else {
			return cur, parent, 0
		}
	}
	return 0, parent, order
}

// Insert [Tree.Insert]. Fails with ErrAllocation, leaving the tree unchanged, when no slot is available.
// Time: O(log n)
func (u *RBTree[K, S]) Insert(k K) error {
	hit, p, order := u.locate(&k)
	if hit != 0 {
		return errors.Wrapf(ErrDuplicateKey, "insert %v", k)
	}
	n, ok := u.alloc()
	if !ok {
		return errors.Wrapf(ErrAllocation, "insert %v with %d nodes", k, u.size)
	}
	u.vs[n-1] = k
	u.trace("insert", n, "linking")
	u.link(n, p, order)
	return nil
}

// Emplace builds the key directly in a node slot with init, which receives a zero K, then
// links it like Insert. On failure the slot is released and the tree is unchanged.
func (u *RBTree[K, S]) Emplace(init func(*K)) error {
	n, ok := u.alloc()
	if !ok {
		return errors.Wrapf(ErrAllocation, "emplace with %d nodes", u.size)
	}
	k := &u.vs[n-1]
	init(k)
	hit, p, order := u.locate(k)
	if hit != 0 {
		err := errors.Wrapf(ErrDuplicateKey, "emplace %v", *k)
		u.release(n)
		return err
	}
	u.trace("emplace", n, "linking")
	u.link(n, p, order)
	return nil
}

// Erase [Tree.Erase].
// Time: O(log n)
func (u *RBTree[K, S]) Erase(k K) error {
	z, _, _ := u.locate(&k)
	if z == 0 {
		return errors.Wrapf(ErrKeyNotFound, "erase %v", k)
	}
	u.trace("erase", z, "unlinking")
	u.unlink(z)
	u.release(z)
	return nil
}

// Add is Insert reporting only success.
func (u *RBTree[K, S]) Add(k K) bool {
	return u.Insert(k) == nil
}

// Remove is Erase reporting only success.
func (u *RBTree[K, S]) Remove(k K) bool {
	return u.Erase(k) == nil
}

// Clear [Tree.Clear]. The arena keeps its capacity.
// Time: O(n)
func (u *RBTree[K, S]) Clear() {
	u.clear()
}

// Has [Tree.Has]
// Time: O(log n)
func (u *RBTree[K, S]) Has(k K) bool {
	hit, _, _ := u.locate(&k)
	return hit != 0
}

// Get the pointer to the stored key equal to k, or nil. Parts of the key that take part in the
// ordering mustn't be modified through the pointer. The pointer is invalidated by the next Insert,
// Emplace, Erase or Clear.
func (u *RBTree[K, S]) Get(k K) *K {
	if hit, _, _ := u.locate(&k); hit != 0 {
		return &u.vs[hit-1]
	}
	return nil
}

// Count [Tree.Count]. The count is maintained on every mutation.
// Time: O(1)
func (u *RBTree[K, S]) Count() int {
	return int(u.size)
}

// CountNodes recounts the nodes by walking the whole tree.
// Time: O(n)
func (u *RBTree[K, S]) CountNodes() int {
	return u.shape().Count(u.root)
}

// Height [Tree.Height]. Empty and single node trees both have height 0.
// Time: O(n)
func (u *RBTree[K, S]) Height() int {
	return max(u.Levels()-1, 0)
}

// Levels is the number of nodes on the longest path from the root; 0 for an empty tree.
// Time: O(n)
func (u *RBTree[K, S]) Levels() int {
	return u.shape().Height(u.root)
}

// BlackHeight is the number of black nodes on any path from the root to a nil, root included.
// Time: O(log n)
func (u *RBTree[K, S]) BlackHeight() (h int) {
	for cur := u.root; cur != 0; cur = u.ifs[cur].l {
		if !u.isRed(cur) {
			h++
		}
	}
	return
}

// Min [Tree.Min]
// Time: O(log n)
func (u *RBTree[K, S]) Min() (K, bool) {
	cur := u.root
	if cur == 0 {
		return *new(K), false
	}
	for u.ifs[cur].l != 0 {
		cur = u.ifs[cur].l
	}
	return u.vs[cur-1], true
}

// Max [Tree.Max]
// Time: O(log n)
func (u *RBTree[K, S]) Max() (K, bool) {
	cur := u.root
	if cur == 0 {
		return *new(K), false
	}
	for u.ifs[cur].r != 0 {
		cur = u.ifs[cur].r
	}
	return u.vs[cur-1], true
}

// Predecessor [Tree.Predecessor]
// Time: O(log n)
func (u *RBTree[K, S]) Predecessor(k K, strict bool) (K, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if c := u.Cmp(k, u.vs[cur-1]); c < 0 || (strict && c == 0) {
			cur = u.ifs[cur].l
		} else {
			p = cur
			cur = u.ifs[cur].r
		}
	}
	if p == 0 {
		return *new(K), false
	}
	return u.vs[p-1], true
}

// Successor [Tree.Successor]
// Time: O(log n)
func (u *RBTree[K, S]) Successor(k K, strict bool) (K, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if c := u.Cmp(k, u.vs[cur-1]); c > 0 || (strict && c == 0) {
			cur = u.ifs[cur].r
		} else {
			p = cur
			cur = u.ifs[cur].l
		}
	}
	if p == 0 {
		return *new(K), false
	}
	return u.vs[p-1], true
}

func (u *RBTree[K, S]) shape() walk.Binary[S] {
	return walk.Binary[S]{
		Left:  func(i S) S { return u.ifs[i].l },
		Right: func(i S) S { return u.ifs[i].r },
	}
}

func (u *RBTree[K, S]) visit(f func(K) bool) func(S) bool {
	return func(i S) bool { return f(u.vs[i-1]) }
}

// InOrder [Tree.InOrder]
func (u *RBTree[K, S]) InOrder(f func(K) bool) {
	u.shape().InOrder(u.root, u.visit(f))
}

// InOrderRev calls f in descending order until f returns false.
func (u *RBTree[K, S]) InOrderRev(f func(K) bool) {
	u.shape().InOrderRev(u.root, u.visit(f))
}

// PreOrder calls f on each node before its subtrees until f returns false.
func (u *RBTree[K, S]) PreOrder(f func(K) bool) {
	u.shape().PreOrder(u.root, u.visit(f))
}

// PostOrder calls f on each node after its subtrees until f returns false.
func (u *RBTree[K, S]) PostOrder(f func(K) bool) {
	u.shape().PostOrder(u.root, u.visit(f))
}

// LevelOrder calls f breadth first, left to right within a level, until f returns false.
// Unlike walk.Binary.LevelOrder it visits with a queue, in O(n).
func (u *RBTree[K, S]) LevelOrder(f func(K) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.New[S](uint(u.size>>1) + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(u.vs[cur-1]) {
			return
		}
		if l := u.ifs[cur].l; l != 0 {
			q.Push(l)
		}
		if r := u.ifs[cur].r; r != 0 {
			q.Push(r)
		}
	}
}

// All keys in ascending order.
func (u *RBTree[K, S]) All() iter.Seq[K] {
	return u.InOrder
}

// Backward yields all keys in descending order.
func (u *RBTree[K, S]) Backward() iter.Seq[K] {
	return u.InOrderRev
}

// Corrupt [Tree.Corrupt]
func (u *RBTree[K, S]) Corrupt() bool {
	return u.Verify() != nil
}

// Verify checks every red-black invariant together with the parent links, the key ordering,
// and the maintained count. It returns the first violation as an *InvariantError.
// Time: O(n)
func (u *RBTree[K, S]) Verify() error {
	if u.ifs[0] != (info[S]{}) || u.red.Test(0) {
		return &InvariantError{Rule: "nil node modified"}
	}
	if u.isRed(u.root) {
		return &InvariantError{"red root", u.key(u.root)}
	}
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return &InvariantError{"root has a parent", u.key(u.root)}
	}
	n, _, err := u.verify(u.root)
	if err != nil {
		return err
	}
	if n != int(u.size) {
		return &InvariantError{Rule: "maintained count differs from node count"}
	}
	var prev *K
	u.shape().InOrder(u.root, func(i S) bool {
		if prev != nil && u.Cmp(*prev, u.vs[i-1]) >= 0 {
			err = &InvariantError{"keys out of order", u.key(i)}
			return false
		}
		prev = &u.vs[i-1]
		return true
	})
	return err
}

// verify the subtree at i, returning its node count and black height.
func (u *RBTree[K, S]) verify(i S) (n, bh int, err error) {
	if i == 0 {
		return 0, 1, nil
	}
	cur := u.ifs[i]
	for _, c := range [2]S{cur.l, cur.r} {
		if c != 0 && u.ifs[c].p != i {
			return 0, 0, &InvariantError{"child doesn't point back to its parent", u.key(c)}
		}
		if u.isRed(i) && u.isRed(c) {
			return 0, 0, &InvariantError{"red node with red child", u.key(i)}
		}
	}
	ln, lbh, err := u.verify(cur.l)
	if err != nil {
		return 0, 0, err
	}
	rn, rbh, err := u.verify(cur.r)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, &InvariantError{"unequal black heights", u.key(i)}
	}
	if !u.isRed(i) {
		lbh++
	}
	return ln + rn + 1, lbh, nil
}

package Trees

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	"math/bits"
)

// The link part of an arena slot.
// Slot 0 is the shared nil node: it is black and its links are never written.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

type base[K any, S constraints.Unsigned] struct {
	root, free  S // free is the beginning of the linked list that contains all the released indexes; info[S]::l represents next.
	size, limit S
	ifs         []info[S]      // ifs[0] is nil. len(ifs)=len(vs)+1
	vs          []K            // vs[i-1] corresponds to ifs[i].
	red         *bitset.BitSet // bit i set means slot i is red.
	log         logrus.FieldLogger
}

func makeBase[K any, S constraints.Unsigned](hint S, c *config) base[K, S] {
	u := base[K, S]{
		limit: ^S(0),
		ifs:   make([]info[S], 1, int(hint)+1),
		vs:    make([]K, 0, int(hint)),
		red:   bitset.New(uint(hint) + 1),
		log:   c.log,
	}
	if c.limit != 0 && c.limit < uint64(u.limit) {
		u.limit = S(c.limit)
	}
	return u
}

func (u *base[K, S]) isRed(i S) bool {
	return i != 0 && u.red.Test(uint(i))
}

func (u *base[K, S]) setRed(i S, red bool) {
	if i != 0 {
		u.red.SetTo(uint(i), red)
	}
}

// addFree index once.
func (u *base[K, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ifs[b].l
		u.ifs[b].l = 0
	}
	return b
}

// alloc a detached black slot. Released slots are reused before the arrays grow.
func (u *base[K, S]) alloc() (S, bool) {
	if u.size >= u.limit {
		return 0, false
	}
	if i := u.popFree(); i != 0 {
		return i, true
	}
	i := S(len(u.ifs))
	if i == 0 || int(i) != len(u.ifs) {
		return 0, false
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, *new(K))
	return i, true
}

// release a slot that is no longer linked into the tree.
func (u *base[K, S]) release(i S) {
	u.vs[i-1] = *new(K)
	u.red.Clear(uint(i))
	u.addFree(i)
}

func (u *base[K, S]) key(i S) any {
	if i == 0 {
		return nil
	}
	return u.vs[i-1]
}

func (u *base[K, S]) trace(op string, i S, format string, args ...any) {
	if u.log == nil {
		return
	}
	u.log.WithFields(logrus.Fields{"op": op, "node": i, "key": u.key(i)}).Debugf(format, args...)
}

// replace old by n under p; p==0 means old was the root.
func (u *base[K, S]) replace(p, old, n S) {
	if p == 0 {
		u.root = n
	} else if u.ifs[p].l == old {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	if n != 0 {
		u.ifs[n].p = p
	}
}

//	  x               r
//	a   r     ->    x   c
//	   b c         a b
func (u *base[K, S]) rotateLeft(x S) {
	r := u.ifs[x].r
	b := u.ifs[r].l
	u.ifs[x].r = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replace(u.ifs[x].p, x, r)
	u.ifs[r].l = x
	u.ifs[x].p = r
}

//	    x           l
//	  l   c  ->   a   x
//	 a b             b c
func (u *base[K, S]) rotateRight(x S) {
	l := u.ifs[x].l
	b := u.ifs[l].r
	u.ifs[x].l = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replace(u.ifs[x].p, x, l)
	u.ifs[l].r = x
	u.ifs[x].p = l
}

// link a detached slot n as a red child of p on the side given by order, then rebalance.
func (u *base[K, S]) link(n, p S, order int) {
	u.ifs[n] = info[S]{p: p}
	if p == 0 {
		u.root = n
	} else if order < 0 {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	u.setRed(n, true)
	u.size++
	u.insertFixup(n)
}

func (u *base[K, S]) insertFixup(z S) {
	for p := u.ifs[z].p; u.isRed(p); p = u.ifs[z].p {
		g := u.ifs[p].p // a red node is never the root, so g!=0.
		if p == u.ifs[g].l {
			if y := u.ifs[g].r; u.isRed(y) {
				u.trace("insert", z, "red uncle, recolor")
				u.setRed(p, false)
				u.setRed(y, false)
				u.setRed(g, true)
				z = g
				continue
			}
			if z == u.ifs[p].r {
				u.trace("insert", z, "black uncle, inner child")
				u.rotateLeft(p)
				z, p = p, z
			}
			u.trace("insert", z, "black uncle, outer child")
			u.setRed(p, false)
			u.setRed(g, true)
			u.rotateRight(g)
		} else {
			if y := u.ifs[g].l; u.isRed(y) {
				u.trace("insert", z, "red uncle, recolor")
				u.setRed(p, false)
				u.setRed(y, false)
				u.setRed(g, true)
				z = g
				continue
			}
			if z == u.ifs[p].l {
				u.trace("insert", z, "black uncle, inner child")
				u.rotateRight(p)
				z, p = p, z
			}
			u.trace("insert", z, "black uncle, outer child")
			u.setRed(p, false)
			u.setRed(g, true)
			u.rotateLeft(g)
		}
	}
	u.setRed(u.root, false)
}

// unlink z from the tree without releasing its slot.
// When z has two children its in-order successor y is physically moved into z's position and
// takes z's color; the color that disappears from the tree is then y's, and the fixup starts
// from y's old position.
func (u *base[K, S]) unlink(z S) {
	zi := u.ifs[z]
	var x, xp S // x now occupies the spliced position under xp; it may be nil.
	removedRed := u.isRed(z)
	if zi.l == 0 || zi.r == 0 {
		if x = zi.l; x == 0 {
			x = zi.r
		}
		xp = zi.p
		u.replace(zi.p, z, x)
	} else {
		y := zi.r
		for u.ifs[y].l != 0 {
			y = u.ifs[y].l
		}
		removedRed = u.isRed(y)
		x = u.ifs[y].r
		if xp = u.ifs[y].p; xp == z {
			xp = y
		} else {
			u.replace(xp, y, x)
			u.ifs[y].r = zi.r
			u.ifs[zi.r].p = y
		}
		u.replace(zi.p, z, y)
		u.ifs[y].l = zi.l
		u.ifs[zi.l].p = y
		u.setRed(y, u.isRed(z))
	}
	u.size--
	if !removedRed {
		u.eraseFixup(x, xp)
	}
}

// eraseFixup pushes the extra black carried by x up the tree until a red node absorbs it or
// the root is reached. xp is x's parent, tracked separately because x may be nil.
func (u *base[K, S]) eraseFixup(x, xp S) {
	for x != u.root && !u.isRed(x) {
		if x == u.ifs[xp].l {
			w := u.ifs[xp].r // non-nil: the removed black node left xp's right side one black deeper.
			if u.isRed(w) {
				u.trace("erase", xp, "red sibling")
				u.setRed(w, false)
				u.setRed(xp, true)
				u.rotateLeft(xp)
				w = u.ifs[xp].r
			}
			if !u.isRed(u.ifs[w].l) && !u.isRed(u.ifs[w].r) {
				u.trace("erase", xp, "black sibling, black nephews")
				u.setRed(w, true)
				x, xp = xp, u.ifs[xp].p
				continue
			}
			if !u.isRed(u.ifs[w].r) {
				u.trace("erase", xp, "black sibling, red near nephew")
				u.setRed(u.ifs[w].l, false)
				u.setRed(w, true)
				u.rotateRight(w)
				w = u.ifs[xp].r
			}
			u.trace("erase", xp, "black sibling, red far nephew")
			u.setRed(w, u.isRed(xp))
			u.setRed(xp, false)
			u.setRed(u.ifs[w].r, false)
			u.rotateLeft(xp)
		} else {
			w := u.ifs[xp].l
			if u.isRed(w) {
				u.trace("erase", xp, "red sibling")
				u.setRed(w, false)
				u.setRed(xp, true)
				u.rotateRight(xp)
				w = u.ifs[xp].l
			}
			if !u.isRed(u.ifs[w].l) && !u.isRed(u.ifs[w].r) {
				u.trace("erase", xp, "black sibling, black nephews")
				u.setRed(w, true)
				x, xp = xp, u.ifs[xp].p
				continue
			}
			if !u.isRed(u.ifs[w].l) {
				u.trace("erase", xp, "black sibling, red near nephew")
				u.setRed(u.ifs[w].r, false)
				u.setRed(w, true)
				u.rotateLeft(w)
				w = u.ifs[xp].l
			}
			u.trace("erase", xp, "black sibling, red far nephew")
			u.setRed(w, u.isRed(xp))
			u.setRed(xp, false)
			u.setRed(u.ifs[w].l, false)
			u.rotateRight(xp)
		}
		x = u.root
	}
	u.setRed(x, false)
}

// buildIfs links the slots 1..n, whose keys are already sorted in vs, into a tree where every
// node's subtrees differ in size by at most one. Every nil is then at depth bits.Len(n)-1 or
// bits.Len(n); coloring the deepest level red when it is incomplete satisfies all invariants.
func (u *base[K, S]) buildIfs(n S) {
	redDepth := -1
	if n&(n+1) != 0 {
		redDepth = bits.Len64(uint64(n)) - 1
	}
	var build func(lo, hi, p S, depth int) S // builds vs[lo:hi]
	build = func(lo, hi, p S, depth int) S {
		if lo >= hi {
			return 0
		}
		mid := lo + (hi-lo)>>1
		i := mid + 1
		u.ifs[i] = info[S]{build(lo, mid, i, depth+1), build(mid+1, hi, i, depth+1), p}
		u.setRed(i, depth == redDepth)
		return i
	}
	u.root = build(0, n, 0, 0)
	u.size = n
}

// clear all slots. Keys are zeroed so the arrays don't retain garbage.
func (u *base[K, S]) clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
	u.ifs = u.ifs[:1]
	u.red.ClearAll()
	u.root, u.free, u.size = 0, 0, 0
}

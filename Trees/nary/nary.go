// Package nary is a general tree whose nodes own an ordered list of children.
package nary

import (
	"iter"
	"slices"

	"github.com/g-m-twostay/go-rbtree/Trees/walk"
	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned (wrapped) by Erase for a child index that doesn't exist.
var ErrIndexOutOfRange = errors.New("child index out of range")

// Node owns its children; parent is only a back reference.
type Node[T any] struct {
	v        T
	parent   *Node[T]
	children []*Node[T]
}

// New root node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{v: v}
}

func shape[T any]() walk.Nary[*Node[T]] {
	return walk.Nary[*Node[T]]{Children: func(n *Node[T]) []*Node[T] { return n.children }}
}

// Value held by the node.
func (u *Node[T]) Value() *T {
	return &u.v
}

// Parent of the node, nil for a root.
func (u *Node[T]) Parent() *Node[T] {
	return u.parent
}

// Children in order. The returned slice mustn't be appended to.
func (u *Node[T]) Children() []*Node[T] {
	return slices.Clip(u.children)
}

// Insert v as the last child and return its node.
func (u *Node[T]) Insert(v T) *Node[T] {
	c := &Node[T]{v: v, parent: u}
	u.children = append(u.children, c)
	return c
}

// Emplace a last child whose value is built in place by init.
func (u *Node[T]) Emplace(init func(*T)) *Node[T] {
	c := &Node[T]{parent: u}
	init(&c.v)
	u.children = append(u.children, c)
	return c
}

// Erase the i-th child together with its subtree.
func (u *Node[T]) Erase(i int) error {
	if i < 0 || i >= len(u.children) {
		return errors.Wrapf(ErrIndexOutOfRange, "erase %d of %d children", i, len(u.children))
	}
	u.children[i].parent = nil
	u.children = slices.Delete(u.children, i, i+1)
	return nil
}

// Clear drops all children.
func (u *Node[T]) Clear() {
	for _, c := range u.children {
		c.parent = nil
	}
	clear(u.children)
	u.children = u.children[:0]
}

// Count of the nodes in the subtree, u included.
func (u *Node[T]) Count() int {
	return shape[T]().Count(u)
}

// Height is the number of nodes on the longest downward path from u.
func (u *Node[T]) Height() int {
	return shape[T]().Height(u)
}

// All nodes of the subtree, parents before children.
func (u *Node[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		shape[T]().PreOrder(u, yield)
	}
}

// Backward yields All in reverse.
func (u *Node[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		shape[T]().PreOrderRev(u, yield)
	}
}

// ChildrenFirst yields every node after all of its children.
func (u *Node[T]) ChildrenFirst() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		shape[T]().PostOrder(u, yield)
	}
}

// Levels yields the subtree breadth first.
func (u *Node[T]) Levels() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		shape[T]().LevelOrder(u, yield)
	}
}

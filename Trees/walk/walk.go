// Package walk traverses trees of any node shape. The walkers hold no state and never modify
// the tree; visitors return false to stop a walk early, in which case the walk returns false.
// All walks are recursive, so their stack depth is the height of the tree.
package walk

// Binary describes a binary tree whose nodes are values of N, such as pointers or arena
// indexes. Left and Right are only called on nodes different from Nil.
type Binary[N comparable] struct {
	Nil         N
	Left, Right func(N) N
}

// PreOrder visits n, then its left and right subtrees.
func (u Binary[N]) PreOrder(n N, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	return f(n) && u.PreOrder(u.Left(n), f) && u.PreOrder(u.Right(n), f)
}

// InOrder visits the left subtree, n, then the right subtree.
func (u Binary[N]) InOrder(n N, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	return u.InOrder(u.Left(n), f) && f(n) && u.InOrder(u.Right(n), f)
}

// InOrderRev is InOrder mirrored: right subtree, n, left subtree.
func (u Binary[N]) InOrderRev(n N, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	return u.InOrderRev(u.Right(n), f) && f(n) && u.InOrderRev(u.Left(n), f)
}

// PostOrder visits both subtrees before n.
func (u Binary[N]) PostOrder(n N, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	return u.PostOrder(u.Left(n), f) && u.PostOrder(u.Right(n), f) && f(n)
}

// LevelOrder visits breadth first, left to right. Each level is reached by a fresh descent
// bounded by its depth, so no queue is kept.
// Time: O(n*h)
func (u Binary[N]) LevelOrder(n N, f func(N) bool) bool {
	for h, i := u.Height(n), 1; i <= h; i++ {
		if !u.level(n, i, f) {
			return false
		}
	}
	return true
}

func (u Binary[N]) level(n N, d int, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	if d == 1 {
		return f(n)
	}
	return u.level(u.Left(n), d-1, f) && u.level(u.Right(n), d-1, f)
}

// Height is the number of nodes on the longest path down from n; 0 if n is Nil.
func (u Binary[N]) Height(n N) int {
	if n == u.Nil {
		return 0
	}
	return max(u.Height(u.Left(n)), u.Height(u.Right(n))) + 1
}

// Count of the nodes under n, n included.
func (u Binary[N]) Count(n N) int {
	if n == u.Nil {
		return 0
	}
	return u.Count(u.Left(n)) + u.Count(u.Right(n)) + 1
}

package walk

// Nary describes a tree whose nodes keep an ordered list of children. Children is only called
// on nodes different from Nil, and the lists it returns must not contain Nil.
type Nary[N comparable] struct {
	Nil      N
	Children func(N) []N
}

// PreOrder visits n, then each child subtree in order.
func (u Nary[N]) PreOrder(n N, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	if !f(n) {
		return false
	}
	for _, c := range u.Children(n) {
		if !u.PreOrder(c, f) {
			return false
		}
	}
	return true
}

// PreOrderRev visits exactly the reverse of PreOrder: child subtrees last to first, then n.
func (u Nary[N]) PreOrderRev(n N, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	cs := u.Children(n)
	for i := len(cs) - 1; i > -1; i-- {
		if !u.PreOrderRev(cs[i], f) {
			return false
		}
	}
	return f(n)
}

// PostOrder visits the child subtrees in order, then n.
func (u Nary[N]) PostOrder(n N, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	for _, c := range u.Children(n) {
		if !u.PostOrder(c, f) {
			return false
		}
	}
	return f(n)
}

// LevelOrder visits breadth first by bounded-depth descents like Binary.LevelOrder.
func (u Nary[N]) LevelOrder(n N, f func(N) bool) bool {
	for h, i := u.Height(n), 1; i <= h; i++ {
		if !u.level(n, i, f) {
			return false
		}
	}
	return true
}

func (u Nary[N]) level(n N, d int, f func(N) bool) bool {
	if n == u.Nil {
		return true
	}
	if d == 1 {
		return f(n)
	}
	for _, c := range u.Children(n) {
		if !u.level(c, d-1, f) {
			return false
		}
	}
	return true
}

// Height is the number of nodes on the longest path down from n; 0 if n is Nil.
func (u Nary[N]) Height(n N) (h int) {
	if n == u.Nil {
		return 0
	}
	for _, c := range u.Children(n) {
		h = max(h, u.Height(c))
	}
	return h + 1
}

// Count of the nodes under n, n included.
func (u Nary[N]) Count(n N) (c int) {
	if n == u.Nil {
		return 0
	}
	for _, ch := range u.Children(n) {
		c += u.Count(ch)
	}
	return c + 1
}

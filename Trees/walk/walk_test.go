package walk

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type node struct {
	v    int
	l, r *node
}

//	    1
//	  2   3
//	 4 5    6
func sample() *node {
	return &node{1, &node{2, &node{v: 4}, &node{v: 5}}, &node{3, nil, &node{v: 6}}}
}

var binary = Binary[*node]{
	Left:  func(n *node) *node { return n.l },
	Right: func(n *node) *node { return n.r },
}

func values(walk func(*node, func(*node) bool) bool, root *node) (s []int) {
	walk(root, func(n *node) bool {
		s = append(s, n.v)
		return true
	})
	return
}

func TestBinary(t *testing.T) {
	root := sample()
	for _, c := range []struct {
		name string
		walk func(*node, func(*node) bool) bool
		want []int
	}{
		{"pre", binary.PreOrder, []int{1, 2, 4, 5, 3, 6}},
		{"in", binary.InOrder, []int{4, 2, 5, 1, 3, 6}},
		{"rev", binary.InOrderRev, []int{6, 3, 1, 5, 2, 4}},
		{"post", binary.PostOrder, []int{4, 5, 2, 6, 3, 1}},
		{"level", binary.LevelOrder, []int{1, 2, 3, 4, 5, 6}},
	} {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, values(c.walk, root))
			for stop := range len(c.want) {
				var s []int
				done := c.walk(root, func(n *node) bool {
					s = append(s, n.v)
					return len(s) <= stop
				})
				assert.False(t, done)
				assert.Equal(t, c.want[:stop+1], s)
			}
			assert.True(t, c.walk(nil, func(*node) bool {
				t.Error("visited a nil tree")
				return true
			}))
		})
	}
	assert.Equal(t, 3, binary.Height(root))
	assert.Equal(t, 6, binary.Count(root))
	assert.Zero(t, binary.Height(nil))
	assert.Zero(t, binary.Count(nil))
}

func TestBinaryIndexed(t *testing.T) {
	// the same shape as sample, addressed by index with 0 as nil.
	ls := []int{0, 2, 4, 0, 0, 0, 0}
	rs := []int{0, 3, 5, 6, 0, 0, 0}
	b := Binary[int]{
		Left:  func(i int) int { return ls[i] },
		Right: func(i int) int { return rs[i] },
	}
	var s []int
	b.LevelOrder(1, func(i int) bool {
		s = append(s, i)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s)
	assert.Equal(t, 6, b.Count(1))
}

type tnode struct {
	v  string
	cs []*tnode
}

// a(b(d, e), c(f))
var nary = Nary[*tnode]{Children: func(n *tnode) []*tnode { return n.cs }}

func TestNary(t *testing.T) {
	root := &tnode{"a", []*tnode{
		{"b", []*tnode{{v: "d"}, {v: "e"}}},
		{"c", []*tnode{{v: "f"}}},
	}}
	names := func(walk func(*tnode, func(*tnode) bool) bool) (s []string) {
		walk(root, func(n *tnode) bool {
			s = append(s, n.v)
			return true
		})
		return
	}
	pre := names(nary.PreOrder)
	assert.Equal(t, []string{"a", "b", "d", "e", "c", "f"}, pre)
	rev := names(nary.PreOrderRev)
	slices.Reverse(rev)
	assert.Equal(t, pre, rev)
	assert.Equal(t, []string{"d", "e", "b", "f", "c", "a"}, names(nary.PostOrder))
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, names(nary.LevelOrder))
	assert.Equal(t, 3, nary.Height(root))
	assert.Equal(t, 6, nary.Count(root))

	var s []string
	assert.False(t, nary.PostOrder(root, func(n *tnode) bool {
		s = append(s, n.v)
		return n.v != "b"
	}))
	assert.Equal(t, []string{"d", "e", "b"}, s)
}

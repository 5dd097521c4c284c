package Trees

// Tree is an ordered set of unique keys.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x K, false). In this
// case the value of x is the zero value and shouldn't be used.
// Mutating methods report expected failures (duplicate, missing key) through
// the returned error and leave the tree unchanged in that case.
type Tree[K any] interface {
	//Insert k. Fails with ErrDuplicateKey if an equal key is present.
	Insert(k K) error
	//Erase the key equal to k. Fails with ErrKeyNotFound if there is none.
	Erase(k K) error
	//Has an element equal to k.
	Has(k K) bool
	//Min element of the tree.
	Min() (K, bool)
	//Max element of the tree.
	Max() (K, bool)
	//Predecessor returns the greatest element less than k, or less than or equal to k when strict is false.
	Predecessor(k K, strict bool) (K, bool)
	//Successor returns the smallest element greater than k, or greater than or equal to k when strict is false.
	Successor(k K, strict bool) (K, bool)
	//Count of the elements.
	Count() int
	//Height is the number of edges on the longest path from the root.
	Height() int
	//InOrder calls f on each element in ascending order until f returns false.
	//The tree must not be modified by f.
	InOrder(f func(K) bool)
	//Clear the tree.
	Clear()
	//Corrupt returns whether the tree violates any of its structural invariants.
	Corrupt() bool
}

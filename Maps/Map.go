package Maps

import "iter"

// Map is an ordered key-value map.
type Map[K any, V any] interface {
	//Put v under k unless k is present, in which case the stored value is left untouched and false is returned.
	Put(K, V) bool
	//Store v under k, returning the replaced value if there was one.
	Store(K, V) (V, bool)
	HasKey(K) bool
	Get(K) (V, bool)
	Remove(K) bool
	//Take removes some pair and returns it. The last return value is false if the map is empty.
	Take() (K, V, bool)
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Pairs() iter.Seq2[K, V]
	Size() uint
}

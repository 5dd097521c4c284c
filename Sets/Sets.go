package Sets

type Set[E any] interface {
	//Put e, returning false if it was already present.
	Put(E) bool
	Has(E) bool
	//Remove e, returning false if it wasn't present.
	Remove(E) bool
	Size() uint
	//Take removes some element and returns it. The second return value is false if the set is empty.
	Take() (E, bool)
	//Range calls f on the elements until f returns false.
	Range(f func(E) bool)
}

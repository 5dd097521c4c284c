package Trees

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinels returned (wrapped) by the mutating operations. Test with errors.Is.
var (
	// ErrDuplicateKey is returned by Insert and Emplace when an equal key is already stored.
	ErrDuplicateKey = errors.New("key already present")
	// ErrKeyNotFound is returned by Erase when no equal key is stored.
	ErrKeyNotFound = errors.New("key not found")
	// ErrAllocation is returned when no node slot can be obtained, either because the
	// configured limit is reached or because the index type S can't address another slot.
	ErrAllocation = errors.New("node allocation failed")
)

// InvalidSliceError reports the first pair in a slice given to From that isn't strictly increasing.
type InvalidSliceError struct {
	Index      int // Prev is at Index-1, Next at Index.
	Prev, Next any
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("slice is not strictly increasing at %d: %v, %v", e.Index, e.Prev, e.Next)
}

// InvariantError is returned by Verify.
type InvariantError struct {
	Rule string
	Key  any // key of the offending node, nil when the violation isn't tied to a node.
}

func (e *InvariantError) Error() string {
	if e.Key == nil {
		return "red-black tree corrupt: " + e.Rule
	}
	return fmt.Sprintf("red-black tree corrupt: %s at key %v", e.Rule, e.Key)
}

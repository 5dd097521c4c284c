package Trees

import (
	"errors"
	"testing"
)

// FuzzTree reads ops from the input: the low 7 bits of a byte are a key, the high bit selects
// erase over insert.
func FuzzTree(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 0x84})
	f.Add([]byte{7, 6, 5, 4, 3, 2, 1, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87})
	f.Add([]byte("hello world, red and black"))

	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := New[int, uint8](0)
		content := make(map[int]struct{})
		for _, op := range ops {
			k := int(op & 0x7f)
			_, in := content[k]
			if op&0x80 != 0 {
				if err := tree.Erase(k); in == errors.Is(err, ErrKeyNotFound) {
					t.Fatalf("erase %d returned %v, present %v", k, err, in)
				}
				delete(content, k)
			} else {
				if err := tree.Insert(k); in != errors.Is(err, ErrDuplicateKey) {
					t.Fatalf("insert %d returned %v, present %v", k, err, in)
				}
				content[k] = struct{}{}
			}
			if err := tree.Verify(); err != nil {
				t.Fatal(err)
			}
			if tree.Count() != len(content) {
				t.Fatalf("tree size is %d, want %d", tree.Count(), len(content))
			}
		}
	})
}

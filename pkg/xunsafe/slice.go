package xunsafe

import (
	"unsafe"

	"github.com/fieldmem/arena/pkg/xunsafe/layout"
)

// Bytes converts a pointer into a slice of its contents.
func Bytes[P ~*E, E any](p P) []byte {
	size := layout.Size[E]()
	return unsafe.Slice(Cast[byte](p), size)
}

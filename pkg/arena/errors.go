package arena

import "errors"

// ErrInvalidArgument is returned when Alloc is called on a nil arena, or
// with a zero size, a zero or non-power-of-two alignment, or an alignment
// greater than size.
var ErrInvalidArgument = errors.New("arena: invalid argument")

// ErrOutOfMemory is returned when the arena's Source cannot supply any more
// backing memory.
//
// An ErrOutOfMemory returned while the arena holds no field (as on its
// first allocation) leaves the arena unchanged. An ErrOutOfMemory returned
// while the arena holds at least one field comes after the whole arena has
// been destroyed: see [Arena.Alloc].
var ErrOutOfMemory = errors.New("arena: out of memory")

func isPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

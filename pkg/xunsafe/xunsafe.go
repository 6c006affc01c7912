// Package xunsafe provides a more convenient interface for performing unsafe
// pointer-arithmetic operations than Go's built-in unsafe package offers
// directly.
//
// It is deliberately small: the arena package only ever needs to cast
// pointers, offset them by raw byte counts, and zero byte ranges. Anything
// beyond that (escape-hiding tricks, variable-length-array helpers, generic
// slice/string reinterpretation) is left out rather than carried as dead
// weight.
package xunsafe

import (
	"sync"
	"unsafe"

	"github.com/fieldmem/arena/pkg/xunsafe/layout"
)

// NoCopy is a type that go vet will complain about having been moved.
//
// It does so by implementing [sync.Locker].
type NoCopy [0]sync.Mutex

// Int is any integer type.
type Int = layout.Int

// BitCast performs an unsafe bitcast from one type to another.
func BitCast[To, From any](v From) To {
	return *(*To)(unsafe.Pointer(&v))
}

package arena

import (
	"unsafe"

	"github.com/fieldmem/arena/internal/debug"
	"github.com/fieldmem/arena/pkg/xunsafe"
)

// DefaultMinFieldSize is the initial field capacity a new Arena grows from,
// unless overridden with SetMinFieldSize before the first allocation.
const DefaultMinFieldSize uintptr = 256 << 20

// Arena is a region-based allocator. It hands out memory from a chain of
// fields obtained from a Source, bump-allocating within the current field
// and falling back to a size-classed free list for individually freed
// blocks.
//
// An Arena is not safe for concurrent use by multiple goroutines without
// external synchronization. A nil *Arena behaves as an empty, already-reset
// arena for Reset, Destroy, Free and Stats; Alloc on a nil *Arena returns
// ErrInvalidArgument.
type Arena struct {
	head         *field
	minFieldSize uintptr
	free         freeIndex
	src          Source

	allocs         uint64
	frees          uint64
	totalRequested uintptr
}

// New returns an empty arena backed by the platform default Source. No
// field is acquired until the first Alloc.
func New() *Arena {
	return &Arena{minFieldSize: DefaultMinFieldSize, src: DefaultSource}
}

// NewWithSource returns an empty arena backed by src.
func NewWithSource(src Source) *Arena {
	if src == nil {
		src = DefaultSource
	}
	return &Arena{minFieldSize: DefaultMinFieldSize, src: src}
}

// SetMinFieldSize overrides the field capacity used for the next growth.
// It is a no-op on a nil arena or for n == 0.
func (a *Arena) SetMinFieldSize(n uintptr) {
	if a == nil || n == 0 {
		return
	}
	a.minFieldSize = n
}

// Alloc returns size bytes aligned to align, which must be a power of two
// no greater than size. It first tries to satisfy the request from the
// free list, then from the current field, growing the field chain if
// necessary.
//
// On invalid arguments, Alloc returns ErrInvalidArgument with no side
// effects. On an out-of-memory condition from the Source: if this is the
// arena's first-ever allocation, Alloc returns ErrOutOfMemory with no
// other side effects; otherwise the whole arena is torn down (all fields
// released, free list cleared) before ErrOutOfMemory is returned, since a
// partially grown arena reachable only through a handle the caller may no
// longer use is worse than an empty one.
func (a *Arena) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if a == nil || size < 1 || align < 1 || !isPowerOfTwo(align) || align > size {
		return nil, ErrInvalidArgument
	}

	if a.src == nil {
		a.src = DefaultSource
	}
	if a.minFieldSize == 0 {
		a.minFieldSize = DefaultMinFieldSize
	}

	if b := a.free.search(size, align); b != nil {
		mem := uintptr(unsafe.Pointer(xunsafe.ByteAdd[byte](b, headerSize)))
		user := alignUp(mem, align)
		zeroRange(mem, user)

		a.allocs++
		a.totalRequested += size

		debug.Log(nil, "Alloc", "reused size=%d align=%d user=%#x", size, align, user)
		return unsafe.Pointer(user), nil
	}

	need := size
	if need < freeBlockSize-headerSize {
		need = freeBlockSize - headerSize
	}

	if a.head == nil {
		if err := a.pushField(need); err != nil {
			return nil, a.fail(err)
		}
	}

	top := a.head.top
	mem := top + headerSize
	user := alignUp(mem, align)
	newTop := alignUp(user+need, freeBlockAlign)

	if newTop > a.head.base+a.head.size {
		if err := a.pushField(need); err != nil {
			return nil, a.fail(err)
		}
		top = a.head.top
		mem = top + headerSize
		user = alignUp(mem, align)
		newTop = alignUp(user+need, freeBlockAlign)

		// pushField sizes the new field to hold need bytes, which does not
		// budget for header + alignment padding. That slack is tiny next to
		// typical field sizes, but a pathologically large align could still
		// overrun a freshly grown field; fail closed rather than write past
		// it.
		if newTop > a.head.base+a.head.size {
			return nil, a.fail(ErrInvalidArgument)
		}
	}

	zeroRange(mem, user)
	writeHeader(top, newTop-mem)
	a.head.top = newTop

	a.allocs++
	a.totalRequested += size

	debug.Log(nil, "Alloc", "bumped size=%d align=%d user=%#x", size, align, user)
	return unsafe.Pointer(user), nil
}

// Free returns p, previously obtained from Alloc on this arena, to the free
// list. Freeing a pointer this arena did not produce, or freeing the same
// pointer twice, is undefined behaviour and is not detected. Free on a nil
// arena, or a nil p, is a no-op.
func (a *Arena) Free(p unsafe.Pointer) error {
	if a == nil || p == nil {
		return nil
	}

	user := uintptr(p)
	blockAddr := blockStartFromUserPtr(user)
	size := readHeader(blockAddr)

	b := (*freeBlock)(unsafe.Pointer(blockAddr))
	b.size = size
	a.free.insert(b)

	a.frees++

	debug.Log(nil, "Free", "user=%#x block=%#x size=%d", user, blockAddr, size)
	return nil
}

// Reset releases every field but the largest (by the doubling growth
// policy, always the most recently acquired one), rewinds its cursor to
// its base, and clears the free list. It is a no-op on a nil or empty
// arena.
func (a *Arena) Reset() {
	if a == nil || a.head == nil {
		return
	}

	largest := a.head
	for f := largest.next; f != nil; {
		next := f.next
		f.destroy(a.src)
		f = next
	}
	largest.next = nil
	largest.top = largest.base

	a.head = largest
	a.free.clear()

	debug.Log(nil, "Reset", "retained field size=%d", largest.size)
}

// Destroy releases every field back to the Source and clears the free
// list. It is always safe to call, including on a nil arena or one that
// has already been destroyed.
func (a *Arena) Destroy() error {
	if a == nil {
		return nil
	}

	for f := a.head; f != nil; {
		next := f.next
		f.destroy(a.src)
		f = next
	}
	a.head = nil
	a.free.clear()

	debug.Log(nil, "Destroy", "released all fields")
	return nil
}

// fail implements the fail-closed OOM policy: if the arena has never
// successfully pushed a field, cause is returned unchanged; otherwise the
// arena is torn down first. head is only ever set on a successful pushField
// that always goes on to complete the allocation that requested it, so
// head != nil here implies some earlier Alloc call fully succeeded.
func (a *Arena) fail(cause error) error {
	if a.head != nil {
		_ = a.Destroy()
	}
	return cause
}

// pushField grows the field chain by one field sized to hold at least
// need bytes, per the doubling growth policy: starting from the arena's
// current minimum field size, double it while half of it is still smaller
// than need, then acquire a field of exactly that size and persist it as
// the new minimum for future growths.
func (a *Arena) pushField(need uintptr) error {
	n := a.minFieldSize
	for n/2 < need {
		n *= 2
	}
	a.minFieldSize = n

	f, err := newField(a.src, n)
	if err != nil {
		return err
	}

	f.next = a.head
	a.head = f

	debug.Log(nil, "pushField", "size=%d", n)
	return nil
}

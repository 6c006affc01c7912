package arena

import (
	"unsafe"

	"github.com/fieldmem/arena/pkg/xunsafe"
)

// headerSize is the width of the size header placed before every live
// allocation.
const headerSize = unsafe.Sizeof(uintptr(0))

func writeHeader(addr, size uintptr) {
	xunsafe.ByteStore[uintptr]((*byte)(unsafe.Pointer(addr)), uintptr(0), size)
}

func readHeader(addr uintptr) uintptr {
	return xunsafe.ByteLoad[uintptr]((*byte)(unsafe.Pointer(addr)), uintptr(0))
}

// zeroRange clears the gap between a block's header and the aligned user
// pointer it precedes. It is also used to restore that gap to zero when a
// reused free block is handed back out with a different alignment.
func zeroRange(start, end uintptr) {
	if end <= start {
		return
	}
	xunsafe.Clear((*byte)(unsafe.Pointer(start)), end-start)
}

// blockStartFromUserPtr recovers the address of a block's header from a
// user pointer previously returned by Alloc.
//
// It walks backwards from user one byte at a time through the zero-filled
// gap until it finds a nonzero byte, which must belong to the header: every
// header encodes a block size of at least sizeof(freeBlock) minus the
// header width (Alloc raises smaller requests to that floor), which is
// nonzero, so the walk can never run past the header into whatever preceded
// it. Aligning the hit address down to alignof(freeBlock) then lands
// exactly on the header's first byte, since the header is always written
// at a freeBlock-aligned address.
func blockStartFromUserPtr(user uintptr) uintptr {
	p := user - 1
	for xunsafe.ByteLoad[byte]((*byte)(unsafe.Pointer(p)), 0) == 0 {
		p--
	}
	return alignDown(p, freeBlockAlign)
}

package arena

import "github.com/fieldmem/arena/pkg/xunsafe/layout"

// freeBlock is the in-band record a free block decays into. It occupies the
// same bytes as the block's size header: size overlaps exactly with the
// header word written at allocation time, so no extra write is needed to
// turn a live block into a free-list node beyond linking it in.
type freeBlock struct {
	size uintptr
	next *freeBlock
}

var (
	freeBlockSize  = uintptr(layout.Size[freeBlock]())
	freeBlockAlign = uintptr(layout.Align[freeBlock]())
)

// fits reports whether a free block of bs bytes, whose user region would
// begin at mem, can satisfy a request for size bytes aligned to align.
//
// bs >= size+align-1 is a cheap admissibility bound: any alignment shift
// within that much slack always leaves room. When that fails, the tighter
// exact check aligns mem up and asks whether the remaining tail is still
// long enough.
func fits(bs, mem, size, align uintptr) bool {
	if bs >= size+align-1 {
		return true
	}
	if bs < size {
		return false
	}
	aligned := alignUp(mem, align)
	return (mem+bs)-aligned >= size
}

package arena

import (
	"unsafe"

	"github.com/fieldmem/arena/pkg/xunsafe"
)

// freeIndex is an array of singly-linked LIFO free lists, one per size
// class plus an overflow bucket.
type freeIndex struct {
	buckets [numClasses]*freeBlock
}

// insert pushes b onto the head of the list for its size class.
func (idx *freeIndex) insert(b *freeBlock) {
	c := classify(b.size)
	b.next = idx.buckets[c]
	idx.buckets[c] = b
}

// search looks for a block able to satisfy (size, align), starting at the
// class for size and scanning upward through larger classes. It unlinks and
// returns the first match, or nil if none fits.
func (idx *freeIndex) search(size, align uintptr) *freeBlock {
	for c := classify(size); c < numClasses; c++ {
		var prev *freeBlock
		for b := idx.buckets[c]; b != nil; b = b.next {
			mem := uintptr(unsafe.Pointer(xunsafe.ByteAdd[byte](b, headerSize)))
			if fits(b.size, mem, size, align) {
				if prev == nil {
					idx.buckets[c] = b.next
				} else {
					prev.next = b.next
				}
				return b
			}
			prev = b
		}
	}
	return nil
}

// clear empties every bucket.
func (idx *freeIndex) clear() {
	for i := range idx.buckets {
		idx.buckets[i] = nil
	}
}

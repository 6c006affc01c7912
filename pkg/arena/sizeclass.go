package arena

// sizeClasses holds the upper bound, in bytes, of each size class. A freed
// block is filed under the smallest class whose bound is >= the block's
// size; the free-list search for an allocation request starts at the
// smallest class whose bound is >= the request and moves on to larger
// classes until a block fits.
//
// The table runs 32 bytes to 1<<20 bytes by powers of two. Anything larger
// falls into the overflow class, numClasses-1, which freeIndex treats like
// any other bucket: oversized blocks are still inserted and reused, just
// without any further size-based segregation among themselves.
var sizeClasses = [...]uintptr{
	1 << 5, 1 << 6, 1 << 7, 1 << 8,
	1 << 9, 1 << 10, 1 << 11, 1 << 12,
	1 << 13, 1 << 14, 1 << 15, 1 << 16,
	1 << 17, 1 << 18, 1 << 19, 1 << 20,
}

// numClasses is the number of buckets in a freeIndex: one per entry in
// sizeClasses, plus one overflow bucket for sizes larger than the largest
// class.
const numClasses = len(sizeClasses) + 1

// overflowClass is the index of the overflow bucket.
const overflowClass = len(sizeClasses)

// classify returns the size-class index that a block of the given size
// should be filed under or searched in.
func classify(size uintptr) int {
	for i, bound := range sizeClasses {
		if size <= bound {
			return i
		}
	}
	return overflowClass
}

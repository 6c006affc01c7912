package arena

import "github.com/fieldmem/arena/pkg/xunsafe/layout"

// alignUp rounds v up to the nearest multiple of align, which must be a
// power of two.
func alignUp(v, align uintptr) uintptr {
	return layout.RoundUp(v, align)
}

// alignDown rounds v down to the nearest multiple of align, which must be a
// power of two.
func alignDown(v, align uintptr) uintptr {
	return layout.RoundDown(v, align)
}

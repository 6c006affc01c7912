// Package arena implements a region-based memory allocator.
//
// An Arena hands out memory from a chain of large slabs ("fields") obtained
// from an OS-backed [Source], using bump-pointer allocation within each
// field. Individually freed blocks are not returned to the field; instead
// they are pushed onto a size-classed free list and reused by later
// allocations that fit. The whole arena can be released at once with
// [Arena.Reset] or [Arena.Destroy], which is the common case for region
// allocators: allocate freely during a unit of work, then throw everything
// away in one step.
//
// This is not a general-purpose replacement for the runtime allocator. It
// does not coalesce adjacent free blocks, does not split oversized free
// blocks, and is not safe for concurrent use without external
// synchronization. See the top-level doc comments on [Arena] for the exact
// contract.
package arena

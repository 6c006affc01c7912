package arena

// Stats is a point-in-time snapshot of an arena's bookkeeping counters. It
// is not part of the core allocator contract: nothing in Alloc, Free,
// Reset or Destroy depends on these numbers being accurate, and collecting
// them costs nothing more than a handful of extra additions per call.
type Stats struct {
	// Allocs is the number of successful Alloc calls.
	Allocs uint64
	// Frees is the number of Free calls given a non-nil pointer.
	Frees uint64
	// ArenaSize is the total usable capacity across all live fields.
	ArenaSize uintptr
	// MemoryInUse is the sum of each live field's bump cursor offset from
	// its base; it includes bytes held by freed-but-not-reused blocks.
	MemoryInUse uintptr
	// TotalMemoryRequested is the sum of the size argument across every
	// successful Alloc call, before alignment and header overhead.
	TotalMemoryRequested uintptr
	// Fields is the number of fields currently in the chain.
	Fields int
	// MinimumFieldSize is the field capacity the next growth will start
	// from.
	MinimumFieldSize uintptr
}

// Stats returns a snapshot of a's counters. It returns the zero Stats for a
// nil arena.
func (a *Arena) Stats() Stats {
	if a == nil {
		return Stats{}
	}

	st := Stats{
		Allocs:               a.allocs,
		Frees:                a.frees,
		TotalMemoryRequested: a.totalRequested,
		MinimumFieldSize:     a.minFieldSize,
	}

	for f := a.head; f != nil; f = f.next {
		st.Fields++
		st.ArenaSize += f.size
		st.MemoryInUse += f.top - f.base
	}

	return st
}

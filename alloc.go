package arena

// alignUp rounds off up to the next multiple of align. align must already
// be validated as a power of two.
func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// allocLocked runs the core alloc procedure assuming a.mu is already held.
// It is the single entry point both the public Alloc family and Realloc's
// fallback path funnel through, per the design note that a reentrant lock
// needs exactly one already-locked core.
func (a *Arena) allocLocked(n, align int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if !isPow2(align) {
		err := newErrorf(KindInvalidArg, "Alloc", "alignment %d is not a power of two", align)
		a.reportErrorLocked(err)
		return nil, err
	}

	o := alignUp(a.offset, align)
	need := o + n

	if need > a.size {
		if !a.canGrow.Load() || !a.ownsBuffer.Load() || a.subCount.Load() > 0 {
			a.stats.failedAllocations.Add(1)
			err := newError(KindOOM, "Alloc")
			a.reportErrorLocked(err)
			return nil, err
		}

		newSize := a.growCB(a.size, need-a.size)
		if newSize == SaturatedSize || newSize <= a.size {
			a.stats.failedAllocations.Add(1)
			err := newError(KindOOM, "Alloc")
			a.reportErrorLocked(err)
			return nil, err
		}

		newBuf := make([]byte, newSize)
		copy(newBuf, a.buf[:a.offset])
		a.buf = newBuf
		a.size = newSize
	}

	p := a.buf[o : o+n : o+n]
	a.offset = o + n

	if peak := uint64(a.offset); peak > a.stats.peakUsage.Load() {
		a.stats.peakUsage.Store(peak)
	}
	a.stats.totalAllocations.Add(1)
	a.stats.liveAllocations.Add(1)
	a.stats.bytesAllocated.Add(uint64(n))

	if a.hook != nil {
		a.hook(a, EventAlloc, p, n, a.hookCtx)
	}

	return p, nil
}

// checkBusyLocked reports and returns a KindBusy error when the arena is
// mid-destruction. It assumes a.mu is held.
func (a *Arena) checkBusyLocked(op string) error {
	if !a.destroying.Load() {
		return nil
	}
	err := newError(KindBusy, op)
	a.reportErrorLocked(err)
	return err
}

// Alloc allocates n bytes at DefaultAlign and returns a slice over them.
// A zero or negative n returns (nil, nil) without touching any counters.
func (a *Arena) Alloc(n int) ([]byte, error) {
	return a.AllocAligned(n, DefaultAlign)
}

// AllocAligned allocates n bytes aligned to align, which must be a power of
// two. Growth on exhaustion is attempted only when the arena owns its
// buffer, was constructed with growth enabled, and has no live sub-arenas.
func (a *Arena) AllocAligned(n, align int) ([]byte, error) {
	if a == nil {
		return nil, newError(KindInvalidArg, "AllocAligned")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkBusyLocked("AllocAligned"); err != nil {
		return nil, err
	}
	return a.allocLocked(n, align)
}

// Calloc behaves like Alloc but zero-fills the returned range.
func (a *Arena) Calloc(n int) ([]byte, error) {
	p, err := a.Alloc(n)
	if err != nil || p == nil {
		return p, err
	}
	clear(p)
	return p, nil
}

// Realloc grows or replaces a previous allocation. If old was the
// most-recent allocation from a and newN fits within old's size plus the
// arena's remaining capacity, the allocation is extended in place.
// Otherwise a fresh block is allocated and old's contents are copied over;
// when newN is larger than len(old), old is poisoned (but its bytes are not
// reclaimed, as arenas never free individual blocks).
func (a *Arena) Realloc(old []byte, newN int) ([]byte, error) {
	if a == nil {
		return nil, newError(KindInvalidArg, "Realloc")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkBusyLocked("Realloc"); err != nil {
		return nil, err
	}

	oldN := len(old)
	if oldN > 0 && a.isLastAllocLocked(old) && newN <= oldN+(a.size-a.offset) {
		grow := newN - oldN
		a.offset += grow
		if peak := uint64(a.offset); peak > a.stats.peakUsage.Load() {
			a.stats.peakUsage.Store(peak)
		}
		if grow > 0 {
			a.stats.bytesAllocated.Add(uint64(grow))
		}
		return a.buf[a.offset-newN : a.offset : a.offset], nil
	}

	p, err := a.allocLocked(newN, DefaultAlign)
	if err != nil {
		return nil, err
	}
	n := oldN
	if newN < n {
		n = newN
	}
	copy(p, old[:n])
	if newN > oldN {
		poison(old)
	}
	return p, nil
}

// isLastAllocLocked reports whether p is exactly the range returned by the
// arena's most recent allocation, i.e. it ends at the current offset and
// starts at the same address the arena would compute for that range.
func (a *Arena) isLastAllocLocked(p []byte) bool {
	if len(a.buf) == 0 || len(p) == 0 {
		return false
	}
	start := a.offset - len(p)
	if start < 0 || start >= len(a.buf) {
		return false
	}
	return &a.buf[start] == &p[0]
}

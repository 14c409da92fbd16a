package arena

// Marker is an opaque snapshot of an arena's offset, captured by Mark and
// consumed by Pop to roll back to it in LIFO order.
type Marker int

// Used returns the number of bytes currently in use.
func (a *Arena) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}

// Remaining returns the number of bytes left before the arena must grow
// (or fail, if it cannot).
func (a *Arena) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.size - a.offset
}

// Peak returns the highest offset ever observed, which persists across
// Reset, Pop, and ResetStats.
func (a *Arena) Peak() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int(a.stats.peakUsage.Load())
}

// Mark captures the current offset as a Marker for later rollback via Pop.
// Up to the arena's configured marker capacity may be live at once; beyond
// that, Mark keeps working (the returned Marker still rolls back offset
// correctly) but the live-allocation bookkeeping Pop reports for that
// marker becomes approximate, and the overflow is reported via the error
// sink.
func (a *Arena) Mark() Marker {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.offset
	if len(a.markers) < a.markerCap {
		a.markers = append(a.markers, markerEntry{
			offset:       m,
			liveSnapshot: a.stats.liveAllocations.Load(),
		})
	} else {
		a.reportErrorLocked(newErrorf(KindInvalidArg, "Mark", "marker stack capacity %d exhausted", a.markerCap))
	}
	return Marker(m)
}

// Pop rolls the arena back to a Marker captured by an earlier Mark. Bytes
// between the marker and the current offset are poisoned, live-allocation
// bookkeeping for allocations made since the marker is unwound, and the
// offset is set to the marker's value. It is an error, reported via the
// error sink, to Pop a marker greater than the current offset.
func (a *Arena) Pop(m Marker) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkBusyLocked("Pop"); err != nil {
		return err
	}

	off := int(m)
	if off > a.offset || off < 0 {
		err := newError(KindMarkerOutOfRange, "Pop")
		a.reportErrorLocked(err)
		return err
	}

	poison(a.buf[off:a.offset])

	snapshot := int64(-1)
	for len(a.markers) > 0 {
		top := a.markers[len(a.markers)-1]
		if top.offset < off {
			break
		}
		a.markers = a.markers[:len(a.markers)-1]
		snapshot = top.liveSnapshot
		if top.offset == off {
			break
		}
	}
	if snapshot >= 0 {
		if delta := a.stats.liveAllocations.Load() - snapshot; delta > 0 {
			a.stats.liveAllocations.Add(-delta)
		}
	}

	a.offset = off
	return nil
}

// Reset poisons the entire buffer and rewinds the offset to zero, reclaiming
// every allocation made so far in one call. PeakUsage is left
// untouched: it tracks the arena's lifetime high-water mark, not the
// current generation.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.destroying.Load() {
		a.reportErrorLocked(newError(KindBusy, "Reset"))
		return
	}

	poison(a.buf[:a.size])
	a.offset = 0
	a.markers = a.markers[:0]

	if a.hook != nil {
		a.hook(a, EventReset, nil, 0, a.hookCtx)
	}
}

// UpdatePeak recomputes PeakUsage against the current offset. It is exposed
// so a Hook can refresh the peak from inside a reentrant call, matching the
// source design's allowance for explicit peak updates outside of Alloc.
func (a *Arena) UpdatePeak() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.destroying.Load() {
		a.reportErrorLocked(newError(KindBusy, "UpdatePeak"))
		return
	}

	if peak := uint64(a.offset); peak > a.stats.peakUsage.Load() {
		a.stats.peakUsage.Store(peak)
	}
}

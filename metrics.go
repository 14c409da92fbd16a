package arena

import "sync/atomic"

// Stats holds the arena's live counters. All fields are atomics so queries
// (and UpdatePeak, invoked from within a Hook) can be read without
// additional synchronization beyond what the caller already holds.
type Stats struct {
	totalAllocations  atomic.Uint64
	liveAllocations   atomic.Int64
	bytesAllocated    atomic.Uint64
	peakUsage         atomic.Uint64
	failedAllocations atomic.Uint64
}

// Metrics is a point-in-time snapshot of an arena's statistics, alongside
// its current capacity figures. Unlike Stats, it is a plain value safe to
// copy, log, or diff.
type Metrics struct {
	SizeInUse         int
	Capacity          int
	TotalAllocations  uint64
	LiveAllocations   int64
	BytesAllocated    uint64
	PeakUsage         int
	FailedAllocations uint64
	NumSubArenas      int32
	Utilization       float64
}

// Metrics returns a snapshot of the arena's current statistics.
func (a *Arena) Metrics() Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.metricsLocked()
}

func (a *Arena) metricsLocked() Metrics {
	var util float64
	if a.size > 0 {
		util = float64(a.offset) / float64(a.size)
	}
	return Metrics{
		SizeInUse:         a.offset,
		Capacity:          a.size,
		TotalAllocations:  a.stats.totalAllocations.Load(),
		LiveAllocations:   a.stats.liveAllocations.Load(),
		BytesAllocated:    a.stats.bytesAllocated.Load(),
		PeakUsage:         int(a.stats.peakUsage.Load()),
		FailedAllocations: a.stats.failedAllocations.Load(),
		NumSubArenas:      a.subCount.Load(),
		Utilization:       util,
	}
}

// ResetStats zeroes every counter except PeakUsage, which is intentionally
// preserved across both ResetStats and Reset: it tracks the high-water mark
// observed over the arena's entire lifetime, not since the last bulk
// reclamation.
func (a *Arena) ResetStats() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.totalAllocations.Store(0)
	a.stats.liveAllocations.Store(0)
	a.stats.bytesAllocated.Store(0)
	a.stats.failedAllocations.Store(0)
}

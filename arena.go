package arena

import (
	"fmt"
	"sync/atomic"
)

// DefaultAlign is the alignment used by Alloc and Calloc: the platform's
// maximum scalar alignment, matching what a general-purpose C allocator
// would hand back from malloc.
const DefaultAlign = 16

// markerEntry is one slot of the marker stack: the offset Mark observed,
// and a snapshot of live allocations at that instant, used to resolve how
// many allocations Pop should subtract from Stats.liveAllocations.
type markerEntry struct {
	offset       int
	liveSnapshot int64
}

// Arena is a region-based bump-pointer allocator. The zero value is not
// ready to use; construct one with New, or initialize caller-owned storage
// with Init, InitWithBuffer, or ReinitWithBuffer.
//
// Every exported method is safe for concurrent use from multiple
// goroutines: mutating operations serialize on a reentrant mutex, and
// ownsBuffer/canGrow/destroying are atomics so they can be inspected
// without it.
type Arena struct {
	mu reentrantMutex

	buf    []byte
	size   int
	offset int

	ownsBuffer atomic.Bool
	canGrow    atomic.Bool
	destroying atomic.Bool

	markers   []markerEntry
	markerCap int

	parent   *Arena
	subCount atomic.Int32

	growCB GrowthFunc

	hook    Hook
	hookCtx any

	stats Stats

	debug debugInfo
}

// finalize is the single point every constructor converges on: it resets
// an Arena's metadata to defaults and installs the buffer, ownership bit,
// and configuration. Grounded in the teacher's single-finalizer
// constructor convergence (NewArena -> grow -> currentChunk setup).
func finalize(a *Arena, buf []byte, size int, owns bool, cfg config) {
	a.buf = buf
	a.size = size
	a.offset = 0
	a.ownsBuffer.Store(owns)
	a.canGrow.Store(cfg.canGrow)
	a.destroying.Store(false)

	markerCap := cfg.markerCap
	if markerCap <= 0 {
		markerCap = DefaultMarkerCapacity
	}
	a.markerCap = markerCap
	a.markers = make([]markerEntry, 0, markerCap)

	a.parent = nil
	a.subCount.Store(0)

	a.growCB = cfg.growCB
	if a.growCB == nil {
		a.growCB = DefaultGrowth
	}

	a.hook = cfg.hook
	if a.hook == nil {
		a.hook = NoopHook
	}
	a.hookCtx = cfg.hookCtx

	a.stats = Stats{}

	if a.debug.id == 0 {
		a.debug.id = GenerateID()
	}
	label := cfg.label
	if label == "" {
		label = fmt.Sprintf("arena-%d", a.debug.id)
	}
	a.debug.label = label
	a.debug.errorFunc = cfg.errorFunc
	if a.debug.errorFunc == nil {
		a.debug.errorFunc = DefaultErrorFunc
	}
	a.debug.errorCtx = cfg.errorCtx

	registerLabel(a.debug.id, a.debug.label)
}

// New creates a heap-allocated Arena with an internally allocated buffer of
// size bytes. The arena owns its buffer.
func New(size int, opts ...Option) *Arena {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	buf := make([]byte, size)
	a := &Arena{}
	finalize(a, buf, size, true, cfg)
	return a
}

// Init initializes caller-owned storage a with an internally allocated
// buffer of size bytes. The arena owns its buffer.
func Init(a *Arena, size int, opts ...Option) error {
	if a == nil {
		return newError(KindInvalidArg, "Init")
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	buf := make([]byte, size)
	finalize(a, buf, size, true, cfg)
	return nil
}

// InitWithBuffer initializes caller-owned storage a with buf. If buf is nil
// and size is positive, a buffer is allocated internally and owned by the
// arena; otherwise the supplied buffer is used and the arena does not own
// it (its lifetime is the caller's responsibility).
func InitWithBuffer(a *Arena, buf []byte, size int, opts ...Option) error {
	if a == nil {
		return newError(KindInvalidArg, "InitWithBuffer")
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	owns := false
	if buf == nil {
		if size <= 0 {
			return newError(KindInvalidArg, "InitWithBuffer")
		}
		buf = make([]byte, size)
		owns = true
	} else {
		size = len(buf)
	}
	finalize(a, buf, size, owns, cfg)
	return nil
}

// ReinitWithBuffer re-initializes an existing (possibly already used or
// destroyed) Arena with a new buffer, tearing down any previous contents
// first. Otherwise it behaves like InitWithBuffer.
func ReinitWithBuffer(a *Arena, buf []byte, size int, opts ...Option) error {
	if a == nil {
		return newError(KindInvalidArg, "ReinitWithBuffer")
	}
	if a.buf != nil && !a.destroying.Load() {
		a.Destroy()
	}
	return InitWithBuffer(a, buf, size, opts...)
}

// Destroy tears the arena down exactly once: it flips destroying from
// false to true (a CAS, so concurrent or repeated calls after the first are
// no-ops), fires an EventDestroy hook, releases the buffer if owned, and
// zeroes the arena's metadata. It does not free the *Arena value itself;
// use Delete for that.
func (a *Arena) Destroy() {
	if a == nil {
		return
	}
	if !a.destroying.CompareAndSwap(false, true) {
		return
	}

	a.mu.Lock()
	if a.hook != nil {
		a.hook(a, EventDestroy, nil, 0, a.hookCtx)
	}
	if a.ownsBuffer.Load() {
		a.buf = nil
	}
	if a.parent != nil {
		a.parent.subCount.Add(-1)
	}
	a.mu.Unlock()

	unregisterLabel(a.debug.id)
	a.zeroMetadata()
}

// Delete destroys *aa and clears the pointer, releasing the last reference
// to a heap-allocated Arena created by New. It is distinct from Destroy so
// that stack- or struct-embedded arenas can be destroyed without a matching
// "free".
func Delete(aa **Arena) {
	if aa == nil || *aa == nil {
		return
	}
	(*aa).Destroy()
	*aa = nil
}

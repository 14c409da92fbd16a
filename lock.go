//go:build !arena_nolock

package arena

import (
	"sync"
	"sync/atomic"

	"github.com/timandy/routine"
)

// reentrantMutex is a mutex that may be locked more than once by the same
// goroutine without deadlocking. This lets a Hook invoked while the lock is
// held call back into the arena to run a query, or a narrowly scoped nested
// allocation, as required of the arena's concurrency model.
//
// Ownership is tracked by goroutine id (github.com/timandy/routine), since
// Go has no native thread-local storage and sync.Mutex is not reentrant.
type reentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Uint64
	depth int
}

func (m *reentrantMutex) Lock() {
	gid := uint64(routine.Goid())
	if m.owner.Load() == gid {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(gid)
	m.depth = 1
}

func (m *reentrantMutex) Unlock() {
	gid := uint64(routine.Goid())
	if m.owner.Load() != gid {
		panic("arena: Unlock called by a goroutine that does not hold the lock")
	}
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

//go:build arena_nolock

package arena

// reentrantMutex collapses to a no-op under the arena_nolock build tag, for
// callers that externally synchronize all access to an Arena (or only ever
// use one from a single goroutine).
type reentrantMutex struct{}

func (m *reentrantMutex) Lock()   {}
func (m *reentrantMutex) Unlock() {}

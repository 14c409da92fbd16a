package arena

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAlloc mirrors the teacher's concurrent-safety benchmark: many
// goroutines hammering Alloc on one arena must never corrupt its offset or
// hand out overlapping ranges.
func TestConcurrentAlloc(t *testing.T) {
	const (
		goroutines = 64
		perGo      = 50
		blockSize  = 8
	)

	a := New(goroutines*perGo*blockSize, WithGrowth(false))
	defer a.Destroy()

	seen := make([][]byte, 0, goroutines*perGo)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGo; j++ {
				p, err := a.Alloc(blockSize)
				require.NoError(t, err)
				require.Len(t, p, blockSize)
				mu.Lock()
				seen = append(seen, p)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGo*blockSize, a.Used())
	assert.Len(t, seen, goroutines*perGo)

	byAddr := make(map[*byte]bool, len(seen))
	for _, p := range seen {
		require.False(t, byAddr[&p[0]], "two allocations returned the same address")
		byAddr[&p[0]] = true
	}
}

// TestReentrantHook exercises the documented guarantee that a Hook may call
// back into the same arena (e.g. UpdatePeak, or Alloc for bookkeeping)
// without deadlocking, thanks to the reentrant mutex.
func TestReentrantHook(t *testing.T) {
	var calls int
	a := New(1024, WithHook(func(a *Arena, kind EventKind, p []byte, n int, ctx any) {
		if kind == EventAlloc && n > 1 {
			calls++
			a.UpdatePeak()
		}
	}, nil))
	defer a.Destroy()

	_, err := a.Alloc(32)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestConcurrentMarkPop(t *testing.T) {
	a := New(1 << 20)
	defer a.Destroy()

	// Markers roll back in LIFO order, so each goroutine's Mark..Pop span is
	// kept whole: an interleaved Pop would rewind past another goroutine's
	// marker and make its Pop fail with KindMarkerOutOfRange.
	var span sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			span.Lock()
			defer span.Unlock()
			m := a.Mark()
			for j := 0; j < 10; j++ {
				_, err := a.Alloc(16)
				assert.NoError(t, err)
			}
			assert.NoError(t, a.Pop(m))
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, a.Used())
}

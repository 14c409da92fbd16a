// Package arena implements a region-based bump-pointer memory allocator.
//
// # Overview
//
// An Arena owns a single contiguous byte buffer and hands out aligned
// sub-ranges of it by advancing an offset. Individual allocations are never
// freed; memory is reclaimed in bulk via Pop (rollback to a Marker) or Reset
// (rollback to the start). Allocation is O(1); bulk reclamation is a single
// call whose cost is the poisoning of the reclaimed bytes (nothing under the
// arena_nopoison build tag). The trade-off is that a single allocation is
// never freed on its own.
//
// # Basic usage
//
//	a := arena.New(64 * 1024)
//	defer a.Destroy()
//
//	buf, err := a.Alloc(1024)
//	ptr, err := arena.Alloc[MyStruct](a)
//	slice, err := arena.AllocSlice[int](a, 100)
//
//	a.Reset() // bulk reclamation
//
// # Markers
//
// Mark captures the current offset; Pop rolls the arena back to a
// previously captured marker, in LIFO order:
//
//	m := a.Mark()
//	a.Alloc(100)
//	a.Alloc(50)
//	a.Pop(m) // undoes both allocations
//
// # Sub-arenas
//
// SubArena carves a nested arena out of a parent's remaining capacity. The
// child shares the parent's backing buffer and cannot grow; reclaiming it is
// done by marking the parent around the SubArena call, not by destroying the
// child in isolation.
//
// # Thread safety
//
// Every Arena is safe for concurrent use: mutating operations serialize on a
// per-arena reentrant mutex, and the ownership/growth/destruction flags are
// atomics so they can be inspected without acquiring the lock. The mutex is
// reentrant per goroutine, so a Hook fired while the lock is held may safely
// call back into the arena (a query, or another allocation).
//
// # Snapshots
//
// Save writes the live portion of an owning arena's buffer to a file in a
// small fixed binary format; Load reads it back. Snapshots are host-endian
// and are not intended to be portable across machines or process builds.
//
// # Build tags
//
//   - arena_nolock disables the per-arena mutex, turning it into a no-op.
//     Use only when the caller externally synchronizes all access.
//   - arena_nopoison disables poisoning of reclaimed memory, trading the
//     use-after-reclaim diagnostic for a small amount of speed.
package arena

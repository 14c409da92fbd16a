package arena

import "fmt"

// Example demonstrates basic arena usage: allocate raw bytes, allocate a
// typed value, check usage, and reclaim everything with one Reset.
func Example() {
	a := New(4096)
	defer a.Destroy()

	buf, _ := a.Alloc(1024)
	fmt.Printf("allocated buffer of size: %d\n", len(buf))

	ptr, _ := Alloc[int64](a)
	*ptr = 42
	fmt.Printf("allocated int64 with value: %d\n", *ptr)

	fmt.Printf("used: %d bytes\n", a.Used())

	a.Reset()
	fmt.Printf("after reset, used: %d bytes\n", a.Used())

	// Output:
	// allocated buffer of size: 1024
	// allocated int64 with value: 42
	// used: 1032 bytes
	// after reset, used: 0 bytes
}

// ExampleArena_Mark demonstrates rolling back a run of allocations in LIFO
// order with Mark and Pop, without touching anything allocated before the
// marker.
func ExampleArena_Mark() {
	a := New(1024)
	defer a.Destroy()

	m := a.Mark()
	a.Alloc(100)
	a.Alloc(50)
	fmt.Printf("used before pop: %d\n", a.Used())

	a.Pop(m)
	fmt.Printf("used after pop: %d\n", a.Used())

	// Output:
	// used before pop: 162
	// used after pop: 0
}

// ExampleArena_SubArena demonstrates carving a nested arena out of a
// parent's remaining capacity; the carved range is reserved in the
// parent's offset for the child's lifetime.
func ExampleArena_SubArena() {
	parent := New(1024)
	defer parent.Destroy()

	child, _ := parent.SubArena(256)
	defer child.Destroy()

	fmt.Printf("child capacity: %d\n", child.Remaining())
	fmt.Printf("parent used: %d\n", parent.Used())

	// Output:
	// child capacity: 256
	// parent used: 256
}

// ExampleArena_Metrics demonstrates reading a point-in-time snapshot of an
// arena's allocation counters.
func ExampleArena_Metrics() {
	a := New(1024)
	defer a.Destroy()

	a.Alloc(100)
	a.Alloc(50)

	m := a.Metrics()
	fmt.Printf("total allocations: %d\n", m.TotalAllocations)
	fmt.Printf("bytes allocated: %d\n", m.BytesAllocated)
	fmt.Printf("size in use: %d\n", m.SizeInUse)

	// Output:
	// total allocations: 2
	// bytes allocated: 150
	// size in use: 162
}

// ExampleArena_growth demonstrates an arena doubling its backing buffer on
// exhaustion when constructed with WithGrowth(true).
func ExampleArena_growth() {
	a := New(16, WithGrowth(true))
	defer a.Destroy()

	a.Alloc(10)
	a.Alloc(20)

	fmt.Printf("used: %d\n", a.Used())
	fmt.Printf("capacity grew past 16: %v\n", a.Metrics().Capacity > 16)

	// Output:
	// used: 36
	// capacity grew past 16: true
}

// ExampleArena_noGrowthOOM demonstrates that an arena constructed with
// WithGrowth(false) reports OOM instead of reallocating once its buffer
// is exhausted.
func ExampleArena_noGrowthOOM() {
	a := New(16, WithGrowth(false))
	defer a.Destroy()

	a.Alloc(10)
	_, err := a.Alloc(20)

	fmt.Printf("second alloc failed: %v\n", err != nil)
	fmt.Printf("used: %d\n", a.Used())

	// Output:
	// second alloc failed: true
	// used: 10
}

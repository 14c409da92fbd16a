package arena

import (
	"bytes"
	"testing"
)

func TestAllocAlignment(t *testing.T) {
	a := New(1024)
	defer a.Destroy()

	if _, err := a.Alloc(3); err != nil {
		t.Fatalf("Alloc(3): %v", err)
	}
	p, err := a.AllocAligned(8, 32)
	if err != nil {
		t.Fatalf("AllocAligned: %v", err)
	}
	if a.Used()-len(p) == 0 {
		t.Fatal("expected padding before the aligned allocation")
	}
	if (a.Used()-len(p))%32 != 0 {
		t.Errorf("aligned block does not start on a 32-byte boundary, offset=%d", a.Used()-len(p))
	}
}

func TestAllocAlignedRejectsNonPow2(t *testing.T) {
	a := New(1024)
	defer a.Destroy()

	if _, err := a.AllocAligned(8, 3); !IsKind(err, KindInvalidArg) {
		t.Errorf("AllocAligned(_, 3) = %v, want KindInvalidArg", err)
	}
}

func TestCallocZeroesMemory(t *testing.T) {
	a := New(1024)
	defer a.Destroy()

	p, err := a.Alloc(64)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	for i := range p {
		p[i] = 0xFF
	}
	m := a.Mark()
	z, err := a.Calloc(64)
	if err != nil {
		t.Fatalf("Calloc: %v", err)
	}
	if !bytes.Equal(z, make([]byte, 64)) {
		t.Error("Calloc did not zero-fill its allocation")
	}
	_ = m
}

func TestReallocInPlaceExtendsLastAlloc(t *testing.T) {
	a := New(1024)
	defer a.Destroy()

	p, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	copy(p, []byte("0123456789abcdef"))
	usedBefore := a.Used()

	grown, err := a.Realloc(p, 32)
	if err != nil {
		t.Fatalf("Realloc: %v", err)
	}
	if len(grown) != 32 {
		t.Fatalf("len(grown) = %d, want 32", len(grown))
	}
	if !bytes.Equal(grown[:16], []byte("0123456789abcdef")) {
		t.Error("in-place Realloc lost original contents")
	}
	if a.Used() != usedBefore+16 {
		t.Errorf("Used() = %d, want %d (in-place growth should not re-bump past the extension)", a.Used(), usedBefore+16)
	}
}

func TestReallocNotLastAllocCopies(t *testing.T) {
	a := New(1024)
	defer a.Destroy()

	first, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	copy(first, []byte("first-allocation"))
	_, err = a.Alloc(16) // second alloc, so first is no longer last
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	grown, err := a.Realloc(first, 32)
	if err != nil {
		t.Fatalf("Realloc: %v", err)
	}
	if !bytes.Equal(grown[:16], []byte("first-allocation")) {
		t.Error("Realloc must copy the old contents when extending a non-last allocation")
	}
}

func TestAllocGeneric(t *testing.T) {
	type point struct{ X, Y int64 }

	a := New(1024)
	defer a.Destroy()

	p, err := Alloc[point](a)
	if err != nil {
		t.Fatalf("Alloc[point]: %v", err)
	}
	if p.X != 0 || p.Y != 0 {
		t.Error("Alloc[T] must return a zeroed value")
	}
	p.X = 42

	s, err := AllocSlice[point](a, 4)
	if err != nil {
		t.Fatalf("AllocSlice[point]: %v", err)
	}
	if len(s) != 4 {
		t.Errorf("len(s) = %d, want 4", len(s))
	}
}

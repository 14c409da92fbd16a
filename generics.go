package arena

import "unsafe"

// Alloc allocates a zeroed T inside a and returns a pointer to it.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	b, err := a.Calloc(int(unsafe.Sizeof(zero)))
	if err != nil || b == nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocSlice allocates a slice of n uninitialized T values inside a.
// A non-positive n returns (nil, nil).
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b, err := a.Alloc(elemSize * n)
	if err != nil || b == nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// AllocSliceZeroed is like AllocSlice but zero-fills the returned elements.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b, err := a.Calloc(elemSize * n)
	if err != nil || b == nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

package chunkedvec

import "fmt"

// GetUnchecked returns a pointer to the element at index without performing
// any bounds check. The caller must guarantee 0 <= index < Len(); anything
// else reads or writes a slot the container does not consider live.
//
// This is the primitive underneath the checked accessors and the removal
// algorithms. Prefer Get, GetMut or At unless the bounds are already known.
func (v *ChunkedVec[T]) GetUnchecked(index int) *T {
	chunkIdx, offset := v.chunkAndOffset(index)
	return v.elemPtr(chunkIdx, offset)
}

// Get returns the element at index, or the zero value and false if index is
// out of bounds.
func (v *ChunkedVec[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.len {
		var zero T
		return zero, false
	}
	return *v.GetUnchecked(index), true
}

// GetMut returns a pointer to the element at index, or nil and false if
// index is out of bounds. The pointer stays valid until the container
// relocates or releases the slot (Remove, Resize, Clear, IntoIter).
func (v *ChunkedVec[T]) GetMut(index int) (*T, bool) {
	if index < 0 || index >= v.len {
		return nil, false
	}
	return v.GetUnchecked(index), true
}

// At returns the element at index.
// It panics if index is out of bounds, like indexing a built-in slice.
func (v *ChunkedVec[T]) At(index int) T {
	if index < 0 || index >= v.len {
		panic(fmt.Sprintf("chunkedvec: index out of range [%d] with length %d", index, v.len))
	}
	return *v.GetUnchecked(index)
}

// Set replaces the element at index with value.
// It panics if index is out of bounds.
func (v *ChunkedVec[T]) Set(index int, value T) {
	if index < 0 || index >= v.len {
		panic(fmt.Sprintf("chunkedvec: index out of range [%d] with length %d", index, v.len))
	}
	*v.GetUnchecked(index) = value
}

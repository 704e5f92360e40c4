package chunkedvec

import (
	"fmt"
	"slices"
)

// Push appends value to the back of the container.
//
// If the target chunk does not exist yet, exactly one new chunk is allocated;
// previously written slots are never touched. O(1) amortized, one chunk
// allocation per chunkSize pushes.
func (v *ChunkedVec[T]) Push(value T) {
	v.init()
	chunkIdx, offset := v.chunkAndOffset(v.len)
	if chunkIdx >= len(v.chunks) {
		c := v.newChunk()
		c[0] = value
		v.chunks = append(v.chunks, c)
	} else {
		v.chunks[chunkIdx][offset] = value
	}
	v.len++
}

// Append pushes every value in order.
func (v *ChunkedVec[T]) Append(values ...T) {
	for _, value := range values {
		v.Push(value)
	}
}

// Resize changes the length to newLen.
//
// When growing, the missing chunks are allocated in bulk and every new slot
// in [Len(), newLen) is filled with a copy of value. When shrinking, the
// slots in [newLen, Len()) are vacated and the chunk list is truncated to the
// minimum number of chunks that holds newLen elements.
//
// It panics if newLen is negative.
func (v *ChunkedVec[T]) Resize(newLen int, value T) {
	if newLen < 0 {
		panic(fmt.Sprintf("chunkedvec: Resize to negative length %d", newLen))
	}
	v.init()

	switch {
	case newLen > v.len:
		need := v.requiredChunks(newLen)
		if need > cap(v.chunks) {
			v.chunks = slices.Grow(v.chunks, need-len(v.chunks))
		}
		for len(v.chunks) < need {
			v.chunks = append(v.chunks, v.newChunk())
		}
		for i := v.len; i < newLen; i++ {
			chunkIdx, offset := v.chunkAndOffset(i)
			v.chunks[chunkIdx][offset] = value
		}
	case newLen < v.len:
		var zero T
		for i := newLen; i < v.len; i++ {
			chunkIdx, offset := v.chunkAndOffset(i)
			v.chunks[chunkIdx][offset] = zero
		}
		v.truncateChunks(v.requiredChunks(newLen))
	}

	v.len = newLen
}

// Remove removes and returns the element at index, shifting every element
// after it one position earlier. Relative order is preserved. Trailing
// chunks that no longer hold any element are released. O(Len() - index).
//
// It panics if index is out of bounds.
func (v *ChunkedVec[T]) Remove(index int) T {
	if index < 0 || index >= v.len {
		panic(fmt.Sprintf("chunkedvec: Remove index out of range [%d] with length %d", index, v.len))
	}

	chunkIdx, offset := v.chunkAndOffset(index)
	ret := *v.elemPtr(chunkIdx, offset)

	// Slide the rest of the removal chunk down by one slot.
	c := v.chunks[chunkIdx]
	copy(c[offset:], c[offset+1:])

	// For every following chunk, carry its first element into the previous
	// chunk's last slot and slide the remainder down. Plain copies: the slot
	// left behind is either overwritten by the next carry or vacated below,
	// so no element is ever observable twice.
	untilChunkIdx, _ := v.chunkAndOffset(v.len - 1)
	for i := chunkIdx; i < untilChunkIdx; i++ {
		next := v.chunks[i+1]
		v.chunks[i][v.chunkSize-1] = next[0]
		copy(next, next[1:])
	}

	v.len--

	// Vacate the stale copy at the old last position, then drop any chunk
	// that no longer holds a live element.
	var zero T
	lastChunkIdx, lastOffset := v.chunkAndOffset(v.len)
	v.chunks[lastChunkIdx][lastOffset] = zero
	v.truncateChunks(v.requiredChunks(v.len))

	return ret
}

// SwapRemove removes and returns the element at index, moving the last
// element into its place. O(1), but the order of the remaining elements is
// not preserved. Unlike Remove, it never releases chunks; a later Remove,
// Resize or Clear reclaims them.
//
// It panics if index is out of bounds.
func (v *ChunkedVec[T]) SwapRemove(index int) T {
	if index < 0 || index >= v.len {
		panic(fmt.Sprintf("chunkedvec: SwapRemove index out of range [%d] with length %d", index, v.len))
	}

	chunkIdx, offset := v.chunkAndOffset(index)
	current := v.elemPtr(chunkIdx, offset)
	ret := *current

	// The bounds check above guarantees a last element exists; it may be the
	// removed slot itself, in which case the move is a self-assignment.
	lastChunkIdx, lastOffset := v.chunkAndOffset(v.len - 1)
	last := v.elemPtr(lastChunkIdx, lastOffset)
	*current = *last

	var zero T
	*last = zero
	v.len--
	return ret
}

// Clear removes all elements and releases every chunk. The chunk-list
// headroom reported by Capacity is kept for reuse.
func (v *ChunkedVec[T]) Clear() {
	v.truncateChunks(0)
	v.len = 0
}

// Reserve grows the chunk list so that Capacity covers at least
// Len()+additional elements without reallocating the list's backing array.
// It allocates no chunks.
func (v *ChunkedVec[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	v.init()
	need := v.requiredChunks(v.len + additional)
	if need > cap(v.chunks) {
		v.chunks = slices.Grow(v.chunks, need-len(v.chunks))
	}
}

// Len returns the number of elements in the container.
func (v *ChunkedVec[T]) Len() int {
	return v.len
}

// IsEmpty reports whether the container holds no elements.
func (v *ChunkedVec[T]) IsEmpty() bool {
	return v.len == 0
}

// Capacity returns the total number of elements the container can track
// without reallocating the chunk list's backing array. It counts headroom in
// the list of chunk handles, so it is always >= AllocatedCapacity.
func (v *ChunkedVec[T]) Capacity() int {
	return cap(v.chunks) * v.chunkSize
}

// AllocatedCapacity returns the number of element slots in chunks that have
// actually been allocated: NumChunks() * ChunkSize().
func (v *ChunkedVec[T]) AllocatedCapacity() int {
	return len(v.chunks) * v.chunkSize
}

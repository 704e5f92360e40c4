// Package chunkedvec implements a growable sequence container that stores
// its elements in fixed-size, independently allocated chunks instead of one
// contiguous buffer, so the container never performs a large reallocate-and-
// copy as it grows.
package chunkedvec

import "unsafe"

// DefaultChunkSize is the number of element slots per chunk when no explicit
// chunk size is given.
const DefaultChunkSize = 64

// ChunkedVec is a vector-like container backed by fixed-size chunks.
// Logical index i lives in chunk i/chunkSize at offset i%chunkSize.
//
// Every slot at a logical index >= Len() holds the zero value of T, so the
// garbage collector never sees a stale element through the container. All
// mutating operations maintain that invariant.
//
// The zero value is an empty container with the default chunk size.
// ChunkedVec is not safe for concurrent use.
type ChunkedVec[T any] struct {
	chunks    [][]T // each chunk has exactly chunkSize slots
	chunkSize int
	len       int
}

// New creates an empty ChunkedVec with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func New[T any](chunkSize int) *ChunkedVec[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ChunkedVec[T]{chunkSize: chunkSize}
}

// WithCapacity creates an empty ChunkedVec whose chunk list can track at
// least capacity elements, rounded up to a whole number of chunks, without
// reallocating its backing array. No chunks are allocated up front; chunk
// memory is still claimed lazily by Push and Resize.
func WithCapacity[T any](chunkSize, capacity int) *ChunkedVec[T] {
	v := New[T](chunkSize)
	if capacity > 0 {
		v.chunks = make([][]T, 0, v.requiredChunks(capacity))
	}
	return v
}

// init gives the zero value a usable chunk size on first growth.
func (v *ChunkedVec[T]) init() {
	if v.chunkSize == 0 {
		v.chunkSize = DefaultChunkSize
	}
}

// chunkAndOffset maps a logical index to its (chunk index, in-chunk offset).
func (v *ChunkedVec[T]) chunkAndOffset(index int) (int, int) {
	return index / v.chunkSize, index % v.chunkSize
}

// requiredChunks returns the minimum chunk count that can hold n elements.
func (v *ChunkedVec[T]) requiredChunks(n int) int {
	if n == 0 {
		return 0
	}
	return (n + v.chunkSize - 1) / v.chunkSize
}

// newChunk allocates one chunk of chunkSize zeroed slots.
func (v *ChunkedVec[T]) newChunk() []T {
	return make([]T, v.chunkSize)
}

// truncateChunks drops every chunk past the first n. The dropped handles are
// nilled out before reslicing so the chunk-list backing array does not pin
// the freed chunks. The handle capacity itself is kept.
func (v *ChunkedVec[T]) truncateChunks(n int) {
	for i := n; i < len(v.chunks); i++ {
		v.chunks[i] = nil
	}
	v.chunks = v.chunks[:n]
}

// chunkPtr returns a pointer to the first slot of a chunk.
// The caller must ensure the chunk exists.
func (v *ChunkedVec[T]) chunkPtr(chunkIdx int) *T {
	return unsafe.SliceData(v.chunks[chunkIdx])
}

// elemPtr returns a pointer to the slot at (chunkIdx, offset) without any
// bounds check on the offset. The caller must ensure the position is valid.
func (v *ChunkedVec[T]) elemPtr(chunkIdx, offset int) *T {
	var zero T
	base := unsafe.Pointer(v.chunkPtr(chunkIdx))
	return (*T)(unsafe.Add(base, uintptr(offset)*unsafe.Sizeof(zero)))
}

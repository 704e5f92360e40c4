package chunkedvec

// The three traversal forms below share the same cursor: a (chunk index,
// in-chunk offset, remaining count) triple advanced one slot at a time,
// rolling over to the next chunk when the offset reaches the chunk size.
// They walk the chunks directly instead of going through indexed access.
// All are forward-only and bounded by the container's length at creation;
// mutating the container while a traversal is live is not supported.

// Iter is a read-only iterator over the elements of a ChunkedVec.
// It yields copies, so the container is left untouched.
type Iter[T any] struct {
	vec       *ChunkedVec[T]
	chunkIdx  int
	offset    int
	remaining int
}

// Iter returns a read-only iterator over the elements, front to back.
func (v *ChunkedVec[T]) Iter() *Iter[T] {
	return &Iter[T]{vec: v, remaining: v.len}
}

func (it *Iter[T]) advance() {
	it.offset++
	if it.offset == it.vec.chunkSize {
		it.chunkIdx++
		it.offset = 0
	}
	it.remaining--
}

// Next returns the next element and true, or the zero value and false once
// the iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	value := it.vec.chunks[it.chunkIdx][it.offset]
	it.advance()
	return value, true
}

// Remaining returns the exact number of elements left to yield.
func (it *Iter[T]) Remaining() int {
	return it.remaining
}

// IterMut is a mutating iterator over the elements of a ChunkedVec.
// Each call to Next yields a pointer to a distinct slot exactly once, so the
// yielded pointers never alias each other.
type IterMut[T any] struct {
	vec       *ChunkedVec[T]
	chunkIdx  int
	offset    int
	remaining int
}

// IterMut returns an iterator that allows modifying each element in place.
func (v *ChunkedVec[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{vec: v, remaining: v.len}
}

func (it *IterMut[T]) advance() {
	it.offset++
	if it.offset == it.vec.chunkSize {
		it.chunkIdx++
		it.offset = 0
	}
	it.remaining--
}

// Next returns a pointer to the next element and true, or nil and false once
// the iterator is exhausted. The pointer stays valid until the container
// relocates or releases the slot.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	p := &it.vec.chunks[it.chunkIdx][it.offset]
	it.advance()
	return p, true
}

// Remaining returns the exact number of elements left to yield.
func (it *IterMut[T]) Remaining() int {
	return it.remaining
}

// IntoIter is an owning iterator: it consumes the ChunkedVec it was created
// from. Each call to Next moves the element out of its slot and vacates the
// slot, so nothing is ever yielded, or left reachable, twice.
type IntoIter[T any] struct {
	vec       *ChunkedVec[T]
	chunkIdx  int
	offset    int
	remaining int
}

// IntoIter returns an owning iterator over the elements, front to back.
// The container must not be used again afterwards; call Close when done,
// or when abandoning the iterator early, to release the remaining elements
// and the chunk storage.
func (v *ChunkedVec[T]) IntoIter() *IntoIter[T] {
	return &IntoIter[T]{vec: v, remaining: v.len}
}

func (it *IntoIter[T]) advance() {
	it.offset++
	if it.offset == it.vec.chunkSize {
		it.chunkIdx++
		it.offset = 0
	}
	it.remaining--
}

// Next moves the next element out of the container and returns it with true,
// or returns the zero value and false once the iterator is exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	slot := &it.vec.chunks[it.chunkIdx][it.offset]
	value := *slot
	var zero T
	*slot = zero
	it.advance()
	return value, true
}

// Remaining returns the exact number of elements left to yield.
func (it *IntoIter[T]) Remaining() int {
	return it.remaining
}

// Close vacates every not-yet-yielded slot, resets the source container's
// length to zero and releases all of its chunks. It continues from the
// iterator's own cursor rather than rescanning from the start. Close is
// idempotent and safe to call after full consumption.
func (it *IntoIter[T]) Close() {
	var zero T
	for it.remaining > 0 {
		it.vec.chunks[it.chunkIdx][it.offset] = zero
		it.advance()
	}
	it.vec.len = 0
	it.vec.truncateChunks(0)
}

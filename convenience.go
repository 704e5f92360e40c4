package chunkedvec

import "iter"

// Of creates a ChunkedVec with the specified chunk size holding the given
// values in order. If chunkSize <= 0, DefaultChunkSize is used.
func Of[T any](chunkSize int, values ...T) *ChunkedVec[T] {
	v := WithCapacity[T](chunkSize, len(values))
	v.Append(values...)
	return v
}

// Collect creates a ChunkedVec with the specified chunk size from any finite
// sequence, pushing each element in order.
func Collect[T any](chunkSize int, seq iter.Seq[T]) *ChunkedVec[T] {
	v := New[T](chunkSize)
	v.Extend(seq)
	return v
}

// Extend pushes every element of seq in order. The sequence must be finite.
func (v *ChunkedVec[T]) Extend(seq iter.Seq[T]) {
	for value := range seq {
		v.Push(value)
	}
}

// Values returns a range-over-func view of the elements, front to back.
func (v *ChunkedVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		chunkIdx, offset := 0, 0
		for remaining := v.len; remaining > 0; remaining-- {
			if !yield(v.chunks[chunkIdx][offset]) {
				return
			}
			offset++
			if offset == v.chunkSize {
				chunkIdx++
				offset = 0
			}
		}
	}
}

// All returns a range-over-func view of index/element pairs, front to back.
func (v *ChunkedVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		chunkIdx, offset := 0, 0
		for i := 0; i < v.len; i++ {
			if !yield(i, v.chunks[chunkIdx][offset]) {
				return
			}
			offset++
			if offset == v.chunkSize {
				chunkIdx++
				offset = 0
			}
		}
	}
}

// Slice copies the elements out into a new plain slice.
func (v *ChunkedVec[T]) Slice() []T {
	out := make([]T, 0, v.len)
	for value := range v.Values() {
		out = append(out, value)
	}
	return out
}

// Equal reports whether the container and the slice hold the same elements
// in the same order.
func Equal[T comparable](v *ChunkedVec[T], other []T) bool {
	if v.Len() != len(other) {
		return false
	}
	it := v.Iter()
	for _, want := range other {
		value, _ := it.Next()
		if value != want {
			return false
		}
	}
	return true
}

// EqualFunc is like Equal but compares elements with eq, allowing the slice
// to hold a different element type.
func EqualFunc[T, U any](v *ChunkedVec[T], other []U, eq func(T, U) bool) bool {
	if v.Len() != len(other) {
		return false
	}
	it := v.Iter()
	for _, want := range other {
		value, _ := it.Next()
		if !eq(value, want) {
			return false
		}
	}
	return true
}

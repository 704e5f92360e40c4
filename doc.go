// Package chunkedvec implements a chunked growable vector for Go.
//
// # Overview
//
// A ChunkedVec stores its elements in fixed-size, independently allocated
// chunks rather than one contiguous buffer. Growing the container never
// copies existing elements, which makes it useful for:
//
//   - Append-heavy workloads where large reallocation pauses matter
//   - Large sequences where a single contiguous block is undesirable
//   - Holding many elements while keeping stable O(1) random access
//   - Ordered data that still needs occasional O(1) unordered removal
//
// # Basic Usage
//
//	v := chunkedvec.New[int](0) // Use default chunk size
//
//	v.Push(1)
//	v.Push(2)
//	fmt.Println(v.At(0), v.Len())
//
//	removed := v.Remove(0) // Order-preserving, O(n)
//	last := v.SwapRemove(0) // Order-breaking, O(1)
//
// # Memory Layout
//
// Elements live in chunks of a fixed number of slots (default 64), chosen at
// construction. Logical index i maps to chunk i/N, offset i%N. Chunks are
// allocated one at a time as Push crosses a chunk boundary and released as a
// whole once no live element remains in them. Every slot past the current
// length holds the zero value, so removed elements never pin memory.
//
// # Iteration
//
// Three traversal forms are provided: Iter (read-only, yields copies),
// IterMut (yields a pointer to each slot exactly once) and IntoIter (owning;
// moves elements out and vacates their slots, with Close releasing whatever
// was not consumed). Values and All expose the same walk as range-over-func
// sequences.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized, one allocation per chunk-size pushes
//   - At/Get/Set: O(1)
//   - Remove: O(n) from the removal point, moves only
//   - SwapRemove: O(1)
//   - Memory overhead: at most one partially filled chunk
//
// # Important Notes
//
//   - Out-of-bounds At, Set, Remove and SwapRemove panic; Get and GetMut
//     return a second result of false instead
//   - GetUnchecked skips bounds checks entirely and is only for callers that
//     have already established the index is live
//   - A ChunkedVec is not safe for concurrent use
//
// # Metrics and Monitoring
//
// The container reports detailed occupancy statistics:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Allocated slots: %d\n", m.AllocatedCapacity)
//	fmt.Printf("Chunks: %d\n", m.NumChunks)
package chunkedvec

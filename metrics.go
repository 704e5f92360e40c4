package chunkedvec

// NumChunks returns the number of chunks currently allocated.
func (v *ChunkedVec[T]) NumChunks() int {
	return len(v.chunks)
}

// ChunkSize returns the number of element slots per chunk.
func (v *ChunkedVec[T]) ChunkSize() int {
	if v.chunkSize == 0 {
		return DefaultChunkSize
	}
	return v.chunkSize
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if no chunks are allocated.
func (v *ChunkedVec[T]) Utilization() float64 {
	allocated := v.AllocatedCapacity()
	if allocated == 0 {
		return 0
	}
	return float64(v.len) / float64(allocated)
}

// Metrics returns a snapshot of container statistics.
func (v *ChunkedVec[T]) Metrics() Metrics {
	return Metrics{
		Len:               v.Len(),
		Capacity:          v.Capacity(),
		AllocatedCapacity: v.AllocatedCapacity(),
		NumChunks:         v.NumChunks(),
		ChunkSize:         v.ChunkSize(),
		Utilization:       v.Utilization(),
	}
}

// Metrics contains statistical information about a ChunkedVec.
type Metrics struct {
	Len               int     // Live elements
	Capacity          int     // Slots trackable without reallocating the chunk list
	AllocatedCapacity int     // Slots in chunks actually allocated
	NumChunks         int     // Number of chunks
	ChunkSize         int     // Slots per chunk
	Utilization       float64 // Ratio of live elements to allocated slots (0.0-1.0)
}

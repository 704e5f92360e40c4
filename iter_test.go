package chunkedvec

import "testing"

func TestIter(t *testing.T) {
	v := Of(2, 1, 2, 3, 4, 5)

	it := v.Iter()
	if it.Remaining() != 5 {
		t.Errorf("Remaining() = %d, want 5", it.Remaining())
	}

	for _, want := range []int{1, 2, 3, 4, 5} {
		got, ok := it.Next()
		if !ok || got != want {
			t.Errorf("Next() = %d, %v, want %d, true", got, ok, want)
		}
	}

	if got, ok := it.Next(); ok || got != 0 {
		t.Errorf("Next() past the end = %d, %v, want 0, false", got, ok)
	}
	if it.Remaining() != 0 {
		t.Errorf("Remaining() after exhaustion = %d, want 0", it.Remaining())
	}

	// The container is untouched.
	if !Equal(v, []int{1, 2, 3, 4, 5}) {
		t.Errorf("contents after Iter = %v, want [1 2 3 4 5]", v.Slice())
	}
}

func TestIterEmpty(t *testing.T) {
	v := New[int](4)

	it := v.Iter()
	if _, ok := it.Next(); ok {
		t.Error("Next() on empty container = _, true, want false")
	}
}

func TestIterRemainingCountsDown(t *testing.T) {
	v := Of(3, 1, 2, 3, 4, 5, 6, 7)

	it := v.Iter()
	for want := 7; want > 0; want-- {
		if it.Remaining() != want {
			t.Errorf("Remaining() = %d, want %d", it.Remaining(), want)
		}
		it.Next()
	}
}

func TestIterMut(t *testing.T) {
	v := Of(2, 1, 2, 3, 4, 5)

	it := v.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 2
	}

	if !Equal(v, []int{2, 4, 6, 8, 10}) {
		t.Errorf("contents after IterMut = %v, want [2 4 6 8 10]", v.Slice())
	}
}

func TestIterMutNoAliasing(t *testing.T) {
	v := Of(2, 1, 2, 3, 4, 5)

	seen := make(map[*int]bool)
	it := v.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if seen[p] {
			t.Fatalf("IterMut yielded slot %p twice", p)
		}
		seen[p] = true
	}
	if len(seen) != 5 {
		t.Errorf("IterMut yielded %d slots, want 5", len(seen))
	}
}

func TestIntoIter(t *testing.T) {
	v := Of(2, 1, 2, 3)

	it := v.IntoIter()
	for _, want := range []int{1, 2, 3} {
		got, ok := it.Next()
		if !ok || got != want {
			t.Errorf("Next() = %d, %v, want %d, true", got, ok, want)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() past the end = _, true, want false")
	}

	it.Close()
	if v.Len() != 0 {
		t.Errorf("source Len() after Close = %d, want 0", v.Len())
	}
	if v.NumChunks() != 0 {
		t.Errorf("source NumChunks() after Close = %d, want 0", v.NumChunks())
	}
}

func TestIntoIterRoundTrip(t *testing.T) {
	const k = 100
	v := New[int](7)
	for i := 0; i < k; i++ {
		v.Push(i)
	}

	it := v.IntoIter()
	count := 0
	for got, ok := it.Next(); ok; got, ok = it.Next() {
		if got != count {
			t.Errorf("Next() = %d, want %d", got, count)
		}
		count++
	}
	it.Close()

	if count != k {
		t.Errorf("consumed %d elements, want %d", count, k)
	}
	if v.Len() != 0 {
		t.Errorf("source Len() = %d, want 0", v.Len())
	}
}

func TestIntoIterVacatesYieldedSlots(t *testing.T) {
	v := New[*int](2)
	xs := make([]int, 5)
	for i := range xs {
		v.Push(&xs[i])
	}

	it := v.IntoIter()
	for i := 0; i < 3; i++ {
		it.Next()
	}

	// Yielded slots are vacated immediately; the rest stay live until Close.
	vacated := [][2]int{{0, 0}, {0, 1}, {1, 0}}
	for _, pos := range vacated {
		if v.chunks[pos[0]][pos[1]] != nil {
			t.Errorf("slot (%d, %d) still holds a reference after being yielded", pos[0], pos[1])
		}
	}
	if v.chunks[1][1] != &xs[3] || v.chunks[2][0] != &xs[4] {
		t.Error("unyielded slots were disturbed before Close")
	}
}

func TestIntoIterPartialClose(t *testing.T) {
	v := New[*int](4)
	xs := make([]int, 10)
	for i := range xs {
		v.Push(&xs[i])
	}

	it := v.IntoIter()
	for i := 0; i < 5; i++ {
		if _, ok := it.Next(); !ok {
			t.Fatalf("Next() #%d = _, false, want true", i)
		}
	}
	it.Close()

	if it.Remaining() != 0 {
		t.Errorf("Remaining() after Close = %d, want 0", it.Remaining())
	}
	if v.Len() != 0 {
		t.Errorf("source Len() after Close = %d, want 0", v.Len())
	}
	if v.NumChunks() != 0 {
		t.Errorf("source NumChunks() after Close = %d, want 0 (chunks released)", v.NumChunks())
	}
}

func TestIntoIterCloseIdempotent(t *testing.T) {
	v := Of(2, 1, 2, 3)

	it := v.IntoIter()
	it.Next()
	it.Close()
	it.Close()

	if v.Len() != 0 || v.NumChunks() != 0 {
		t.Errorf("after double Close: Len() = %d, NumChunks() = %d, want 0, 0", v.Len(), v.NumChunks())
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after Close = _, true, want false")
	}
}

func TestIntoIterCloseWithoutConsuming(t *testing.T) {
	v := New[*int](2)
	xs := make([]int, 5)
	for i := range xs {
		v.Push(&xs[i])
	}

	v.IntoIter().Close()

	if v.Len() != 0 || v.NumChunks() != 0 {
		t.Errorf("after Close: Len() = %d, NumChunks() = %d, want 0, 0", v.Len(), v.NumChunks())
	}
}

func TestIteratorsCrossChunkBoundaries(t *testing.T) {
	// Chunk size 1 forces a rollover on every advance.
	v := New[int](1)
	for i := 1; i <= 4; i++ {
		v.Push(i)
	}

	it := v.Iter()
	for _, want := range []int{1, 2, 3, 4} {
		got, ok := it.Next()
		if !ok || got != want {
			t.Errorf("Next() = %d, %v, want %d, true", got, ok, want)
		}
	}
}

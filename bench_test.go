package chunkedvec

import "testing"

// BenchmarkPushVsBuiltin compares append-heavy growth against a plain slice
func BenchmarkPushVsBuiltin(b *testing.B) {
	const n = 10000

	b.Run("ChunkedVec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int](1024)
			for j := 0; j < n; j++ {
				v.Push(j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

func BenchmarkAt(b *testing.B) {
	v := New[int](1024)
	for i := 0; i < 10000; i++ {
		v.Push(i)
	}
	b.ResetTimer()

	sum := 0
	for i := 0; i < b.N; i++ {
		sum += v.At(i % 10000)
	}
	_ = sum
}

func BenchmarkIter(b *testing.B) {
	v := New[int](1024)
	for i := 0; i < 10000; i++ {
		v.Push(i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sum := 0
		it := v.Iter()
		for x, ok := it.Next(); ok; x, ok = it.Next() {
			sum += x
		}
		_ = sum
	}
}

// BenchmarkSwapRemoveVsRemove shows the O(1) vs O(n) removal cost
func BenchmarkSwapRemoveVsRemove(b *testing.B) {
	const n = 4096

	b.Run("SwapRemove", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			v := New[int](256)
			for j := 0; j < n; j++ {
				v.Push(j)
			}
			b.StartTimer()
			for v.Len() > 0 {
				v.SwapRemove(0)
			}
		}
	})

	b.Run("Remove", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			v := New[int](256)
			for j := 0; j < n; j++ {
				v.Push(j)
			}
			b.StartTimer()
			for v.Len() > 0 {
				v.Remove(0)
			}
		}
	})
}

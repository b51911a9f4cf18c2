package array

import (
	"testing"
)

// ==============================================================================
// Helper Functions for Benchmarks
// ==============================================================================

func createBenchRagged(tb testing.TB, n int) *Ragged[float64] {
	tb.Helper()

	elements := make([][]float64, n)
	for i := range n {
		if i%7 == 0 {
			continue // missing
		}
		elements[i] = make([]float64, i%5+1)
		for j := range elements[i] {
			elements[i][j] = float64(i%97 + j)
		}
	}

	return FromSlices(elements)
}

// ==============================================================================
// Benchmarks
// ==============================================================================

func BenchmarkRagged_At(b *testing.B) {
	r := createBenchRagged(b, 10_000)

	b.Run("First", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for b.Loop() {
			_, _ = r.At(1)
		}
	})

	b.Run("Last", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for b.Loop() {
			_, _ = r.At(-1)
		}
	})
}

func BenchmarkRagged_Take(b *testing.B) {
	r := createBenchRagged(b, 10_000)
	indices := make([]int, 1_000)
	for i := range indices {
		indices[i] = (i * 31) % r.Len()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = r.Take(indices)
	}
}

func BenchmarkRagged_Unique(b *testing.B) {
	r := createBenchRagged(b, 10_000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = r.Unique()
	}
}

func BenchmarkRagged_FillForward(b *testing.B) {
	r := createBenchRagged(b, 10_000)
	strategy := FillForward[float64](0)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = r.FillMissing(strategy)
	}
}

func BenchmarkRagged_SearchSorted(b *testing.B) {
	r := createBenchRagged(b, 10_000).Sorted()
	query := []float64{48, 49}

	b.Run("Left", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for b.Loop() {
			_ = r.SearchSorted(query, SideLeft)
		}
	})

	b.Run("Right", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for b.Loop() {
			_ = r.SearchSorted(query, SideRight)
		}
	})
}

func BenchmarkConcat(b *testing.B) {
	parts := []*Ragged[float64]{
		createBenchRagged(b, 1_000),
		createBenchRagged(b, 5_000),
		createBenchRagged(b, 100),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = Concat(parts...)
	}
}

package treemap_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore/treemap"
)

// makeMap creates a Map[int, int] of size n for benchmarks.
func makeMap(n int) treemap.Map[int, int] {
	m := make(treemap.Map[int, int], n)
	for i := 0; i < n; i++ {
		m[i] = i * 2
	}
	return m
}

func BenchmarkPairs(b *testing.B) {
	m := makeMap(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Pairs()
	}
}

func BenchmarkOmit(b *testing.B) {
	m := makeMap(10_000)
	keys := makeMap(1_000).Keys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Omit(keys)
	}
}

func BenchmarkInvert(b *testing.B) {
	m := makeMap(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		treemap.Invert(m)
	}
}

package vec_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore/vec"
)

// makeInts creates a Vec[int] of size n holding n/2 distinct values.
func makeInts(n int) vec.Vec[int] {
	items := make(vec.Vec[int], n)
	for i := range items {
		items[i] = i / 2
	}
	return items
}

func BenchmarkUniq(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Uniq()
	}
}

func BenchmarkUniqFunc(b *testing.B) {
	v := makeInts(1_000)
	eq := func(a, b int) bool { return a == b }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vec.UniqFunc(v, eq)
	}
}

func BenchmarkWithout(b *testing.B) {
	v := makeInts(10_000)
	values := makeInts(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Without(values)
	}
}

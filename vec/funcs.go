package vec

// This file contains package-level functions: operations that introduce a new
// type parameter, and equality-function variants for element types that are
// not comparable.

import (
	"github.com/hasbyte1/go-underscore/internal/member"
	"github.com/hasbyte1/go-underscore/treemap"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Object zips keys with values positionally into a treemap.Map.
//
// Only min(len(keys), len(values)) pairs are produced; surplus keys or values
// are ignored. When a key repeats, the pair with the higher index wins.
//
//	vec.Object(vec.Of("a", "b", "a"), []int{1, 2, 3}) // → map[a:3 b:2]
func Object[K constraints.Ordered, V any](keys Vec[K], values []V) treemap.Map[K, V] {
	n := min(len(keys), len(values))
	out := make(treemap.Map[K, V], n)
	for i := 0; i < n; i++ {
		out[keys[i]] = values[i]
	}
	return out
}

// UniqFunc returns items without duplicates according to eq, keeping the
// first occurrence of each value.
func UniqFunc[T any](items []T, eq func(a, b T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, dup := IndexOfFunc(out, item, eq); !dup {
			out = append(out, item)
		}
	}
	return out
}

// WithoutFunc returns the elements of items not equal, according to eq, to
// any of values.
func WithoutFunc[T any](items, values []T, eq func(a, b T) bool) []T {
	keep := member.Not(member.Func(values, eq))
	return lo.Filter(items, func(item T, _ int) bool { return keep(item) })
}

// IntersectionFunc returns the elements of items equal, according to eq, to
// some element of other.
func IntersectionFunc[T any](items, other []T, eq func(a, b T) bool) []T {
	in := member.Func(other, eq)
	return lo.Filter(items, func(item T, _ int) bool { return in(item) })
}

// IndexOfFunc returns the index of the first element equal to value according
// to eq.
func IndexOfFunc[T any](items []T, value T, eq func(a, b T) bool) (int, bool) {
	for i, item := range items {
		if eq(item, value) {
			return i, true
		}
	}
	return -1, false
}

// LastIndexOfFunc returns the highest index whose element is equal to value
// according to eq.
func LastIndexOfFunc[T any](items []T, value T, eq func(a, b T) bool) (int, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if eq(items[i], value) {
			return i, true
		}
	}
	return -1, false
}

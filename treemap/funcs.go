package treemap

// This file contains package-level functions for operations whose result type
// cannot be expressed as a method on Map[K, V].

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// From builds a Map from key/value pairs. When a key repeats, the later pair
// wins.
func From[K constraints.Ordered, V any](pairs ...lo.Entry[K, V]) Map[K, V] {
	out := make(Map[K, V], len(pairs))
	for _, p := range pairs {
		out[p.Key] = p.Value
	}
	return out
}

// Invert returns a Map where the values of m have become the keys and the
// keys the values.
//
// Entries are visited in ascending key order, so when several keys share a
// value the greatest of them ends up in the result.
//
//	treemap.Invert(treemap.Map[string, int]{"a": 1, "b": 1, "c": 2})
//	// → map[1:b 2:c]
func Invert[K, V constraints.Ordered](m Map[K, V]) Map[V, K] {
	out := make(Map[V, K], len(m))
	m.Each(func(k K, v V) {
		out[v] = k
	})
	return out
}

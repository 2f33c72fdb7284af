package treemap

import (
	"cmp"

	"github.com/hasbyte1/go-underscore/internal/member"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Map is a map whose helpers iterate in ascending key order.
type Map[K constraints.Ordered, V any] map[K]V

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (m Map[K, V]) Len() int { return len(m) }

// Keys returns the keys in ascending order. NaN keys sort first.
func (m Map[K, V]) Keys() []K {
	keys := maps.Keys(m)
	slices.SortFunc(keys, cmp.Less[K])
	return keys
}

// Values returns the values ordered by their keys.
func (m Map[K, V]) Values() []V {
	return lo.Map(m.Pairs(), func(e lo.Entry[K, V], _ int) V { return e.Value })
}

// Each calls fn for every entry in ascending key order.
func (m Map[K, V]) Each(fn func(K, V)) {
	for _, e := range m.Pairs() {
		fn(e.Key, e.Value)
	}
}

// Pairs returns a snapshot of the entries as key/value pairs in ascending key
// order. Values come from ranging over m, never from a key lookup, so a NaN
// key keeps its value.
func (m Map[K, V]) Pairs() []lo.Entry[K, V] {
	out := make([]lo.Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, lo.Entry[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b lo.Entry[K, V]) bool { return cmp.Less(a.Key, b.Key) })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns the entries whose key appears in keys. Keys absent from m are
// skipped and repeated keys yield a single entry.
func (m Map[K, V]) Pick(keys []K) Map[K, V] {
	out := make(Map[K, V], len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickBy returns the entries for which fn returns true. fn is called once per
// entry, in ascending key order.
func (m Map[K, V]) PickBy(fn func(K, V) bool) Map[K, V] {
	out := make(Map[K, V])
	m.Each(func(k K, v V) {
		if fn(k, v) {
			out[k] = v
		}
	})
	return out
}

// Omit returns the entries whose key does not appear in keys.
func (m Map[K, V]) Omit(keys []K) Map[K, V] {
	keep := member.Not(member.Of(keys))
	return m.PickBy(func(k K, _ V) bool { return keep(k) })
}

// OmitBy returns the entries for which fn returns false. It is the complement
// of [Map.PickBy].
func (m Map[K, V]) OmitBy(fn func(K, V) bool) Map[K, V] {
	return m.PickBy(func(k K, v V) bool { return !fn(k, v) })
}

// Defaults returns the entries of m plus every entry of appends whose key is
// not already in m. Values of m are never overwritten.
func (m Map[K, V]) Defaults(appends Map[K, V]) Map[K, V] {
	return lo.Assign[K, V](appends, m)
}

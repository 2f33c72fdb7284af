package hashmap

import (
	"github.com/hasbyte1/go-underscore/internal/member"
	"github.com/samber/lo"
)

// Map is a hash map with underscore-style helpers. Iteration order is
// unspecified.
type Map[K comparable, V any] map[K]V

// Len returns the number of entries.
func (m Map[K, V]) Len() int { return len(m) }

// Keys returns the keys in unspecified order.
func (m Map[K, V]) Keys() []K { return lo.Keys[K, V](m) }

// Values returns the values in unspecified order.
func (m Map[K, V]) Values() []V { return lo.Values[K, V](m) }

// Pairs returns a snapshot of the entries as key/value pairs in unspecified
// order.
func (m Map[K, V]) Pairs() []lo.Entry[K, V] { return lo.Entries[K, V](m) }

// Pick returns the entries whose key appears in keys. Keys absent from m are
// skipped.
func (m Map[K, V]) Pick(keys []K) Map[K, V] {
	out := make(Map[K, V], len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickBy returns the entries for which fn returns true.
func (m Map[K, V]) PickBy(fn func(K, V) bool) Map[K, V] {
	return lo.PickBy[K, V](m, fn)
}

// Omit returns the entries whose key does not appear in keys.
func (m Map[K, V]) Omit(keys []K) Map[K, V] {
	in := member.Of(keys)
	return m.OmitBy(func(k K, _ V) bool { return in(k) })
}

// OmitBy returns the entries for which fn returns false.
func (m Map[K, V]) OmitBy(fn func(K, V) bool) Map[K, V] {
	return lo.OmitBy[K, V](m, fn)
}

// Defaults returns the entries of m plus every entry of appends whose key is
// missing from m. Existing values are kept.
func (m Map[K, V]) Defaults(appends Map[K, V]) Map[K, V] {
	return lo.Assign[K, V](appends, m)
}

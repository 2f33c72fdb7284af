package hashmap

import "github.com/samber/lo"

// From builds a Map from key/value pairs; a repeated key keeps the later
// value.
func From[K comparable, V any](pairs ...lo.Entry[K, V]) Map[K, V] {
	return lo.FromEntries(pairs)
}

// Invert swaps keys and values. When several keys share a value, which of
// them survives is unspecified.
func Invert[K, V comparable](m Map[K, V]) Map[V, K] {
	return lo.Invert[K, V](m)
}

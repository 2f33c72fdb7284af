// Package member holds the membership tests shared by the vec, hashmap and
// treemap packages.
package member

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// linearLimit is the list length up to which a plain scan is used instead of
// building a lookup set.
const linearLimit = 8

// Of returns a predicate reporting whether v equals one of items.
//
// items is copied when Of is called; later changes to it are not observed.
func Of[T comparable](items []T) func(T) bool {
	if len(items) <= linearLimit {
		items = slices.Clone(items)
		return func(v T) bool { return lo.Contains(items, v) }
	}
	set := lo.Associate(items, func(item T) (T, struct{}) { return item, struct{}{} })
	return func(v T) bool {
		_, ok := set[v]
		return ok
	}
}

// Func returns a predicate reporting whether v is equal, according to eq, to
// one of items. Each call costs O(len(items)).
func Func[T any](items []T, eq func(a, b T) bool) func(T) bool {
	return func(v T) bool {
		return slices.IndexFunc(items, func(item T) bool { return eq(item, v) }) >= 0
	}
}

// Not negates fn.
func Not[T any](fn func(T) bool) func(T) bool {
	return func(v T) bool { return !fn(v) }
}

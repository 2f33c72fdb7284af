package vec

import (
	"github.com/hasbyte1/go-underscore/internal/member"
	"github.com/samber/lo"
)

// Vec is a slice of comparable elements with underscore-style helpers.
type Vec[T comparable] []T

// Of creates a Vec from a variadic list of items (copied).
func Of[T comparable](items ...T) Vec[T] {
	dst := make(Vec[T], len(items))
	copy(dst, items)
	return dst
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (v Vec[T]) Len() int { return len(v) }

// First returns the first element. Returns the zero value and false when v is
// empty.
func (v Vec[T]) First() (T, bool) {
	var zero T
	if len(v) == 0 {
		return zero, false
	}
	return v[0], true
}

// Last returns the last element. Returns the zero value and false when v is
// empty.
func (v Vec[T]) Last() (T, bool) {
	var zero T
	if len(v) == 0 {
		return zero, false
	}
	return v[len(v)-1], true
}

// Contains reports whether v holds value.
func (v Vec[T]) Contains(value T) bool {
	return lo.Contains(v, value)
}

// IndexOf returns the index of the first element equal to value.
func (v Vec[T]) IndexOf(value T) (int, bool) {
	i := lo.IndexOf(v, value)
	return i, i >= 0
}

// LastIndexOf returns the highest index whose element equals value.
// It returns (-1, false) for an empty Vec or when nothing matches.
func (v Vec[T]) LastIndexOf(value T) (int, bool) {
	i := lo.LastIndexOf(v, value)
	return i, i >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Without returns the elements of v that are not equal to any of values,
// in their original order.
func (v Vec[T]) Without(values []T) Vec[T] {
	keep := member.Not(member.Of(values))
	return lo.Filter(v, func(item T, _ int) bool { return keep(item) })
}

// Intersection returns the elements of v that are equal to some element of
// other, in their original order. Duplicates in v are all kept.
func (v Vec[T]) Intersection(other []T) Vec[T] {
	in := member.Of(other)
	return lo.Filter(v, func(item T, _ int) bool { return in(item) })
}

// Uniq returns v without duplicates, keeping the first occurrence of each
// value.
func (v Vec[T]) Uniq() Vec[T] {
	return lo.Uniq(v)
}

// Reject returns the elements for which fn returns false. It is the
// complement of a filter.
func (v Vec[T]) Reject(fn func(T) bool) Vec[T] {
	return lo.Reject(v, func(item T, _ int) bool { return fn(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & joining
// ─────────────────────────────────────────────────────────────────────────────

// Initial returns a copy of the first n elements. n is clamped to
// [0, v.Len()].
func (v Vec[T]) Initial(n int) Vec[T] {
	return Of(v[:clamp(n, len(v))]...)
}

// Rest returns a copy of the elements from index n onwards. n is clamped to
// [0, v.Len()].
func (v Vec[T]) Rest(n int) Vec[T] {
	return Of(v[clamp(n, len(v)):]...)
}

// Union returns v followed by every element of others. Duplicates are kept;
// call [Vec.Uniq] on the result for a set union.
func (v Vec[T]) Union(others ...[]T) Vec[T] {
	total := len(v)
	for _, o := range others {
		total += len(o)
	}
	out := make(Vec[T], 0, total)
	out = append(out, v...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

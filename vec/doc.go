// Package vec adds underscore.js-style helpers to Go slices.
//
// # The Vec type
//
// [Vec] is a named slice type, so any []T converts to it without copying and
// the helpers read like methods on the slice itself:
//
//	v := vec.Of(0, 1, 1, 2, 2, 3)
//	v.Uniq()                       // → [0 1 2 3]
//	v.Without([]int{1})            // → [0 2 2 3]
//	v.Intersection([]int{2, 3, 4}) // → [2 2 3]
//	v.LastIndexOf(2)               // → 4, true
//
//	vec.Vec[string](names).First() // convert an existing slice
//
// Single-value lookups ([Vec.First], [Vec.Last], [Vec.IndexOf],
// [Vec.LastIndexOf]) report absence with a second boolean result and never
// panic on an empty slice.
//
// # Ownership
//
// Transforming methods take the receiver by contract and return a freshly
// allocated slice; the receiver is not modified and the result never shares
// its backing array.
//
// # Types without ==
//
// Vec requires comparable elements. For element types that only offer an
// equality function (slices, maps, structs holding them) use the *Func
// variants, which cost O(n·m) comparisons:
//
//	vec.UniqFunc(rows, func(a, b []int) bool { return slices.Equal(a, b) })
//
// # Building maps
//
// [Object] zips a key slice with a value slice into a treemap.Map. Like the
// other type-changing helpers it is a package-level function, since Go
// methods cannot introduce type parameters.
package vec

// Package hashmap adds underscore.js-style helpers to a plain Go map.
//
// [Map] is map[K]V with K constrained to comparable. Iteration order is
// whatever the runtime gives, so sequence results such as [Map.Pairs] and
// tie-breaks such as duplicate values in [Invert] are unspecified. Use the
// treemap package when a deterministic order is required.
//
//	m := hashmap.Map[string, int]{"a": 1, "b": 2}
//	m.Pick([]string{"a"})                                   // → map[a:1]
//	m.OmitBy(func(_ string, v int) bool { return v > 1 })   // → map[a:1]
//	m.Defaults(hashmap.Map[string, int]{"a": 9, "c": 3})    // → map[a:1 b:2 c:3]
//
// The receiver of every transforming method is treated as consumed: it is not
// modified, but callers should continue with the returned map.
package hashmap

// Package treemap adds underscore.js-style helpers to a Go map whose keys are
// ordered.
//
// # Ordering
//
// [Map] is a plain map[K]V with K constrained to [constraints.Ordered]. Go maps
// have no iteration order, so every helper in this package walks the keys in
// ascending order instead of ranging over the map directly. Results that are
// sequences ([Map.Pairs], [Map.Keys], [Map.Values]) are therefore
// deterministic, and tie-breaks such as duplicate values in [Invert] are
// resolved by key order:
//
//	m := treemap.Map[string, int]{"b": 2, "a": 1}
//	m.Pairs()                     // → [{a 1} {b 2}]
//	m.Pick([]string{"a", "zzz"})  // → map[a:1]
//	m.Omit([]string{"a"})         // → map[b:2]
//
// # Ownership
//
// Methods other than the read-only accessors take the receiver by contract:
// once a map is handed to Pick, Omit, Defaults and friends the caller should
// treat it as spent and continue with the returned map. The helpers never
// modify the receiver and never return a map that shares storage with it.
//
// Missing keys are never an error; they simply do not appear in the result.
package treemap

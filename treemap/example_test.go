package treemap_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/treemap"
)

func ExampleMap_Pick() {
	m := treemap.Map[string, int]{"a": 1, "b": 2, "c": 3}
	fmt.Println(m.Pick([]string{"a", "c", "missing"}))
	// Output: map[a:1 c:3]
}

func ExampleMap_Defaults() {
	origin := treemap.Map[int, int]{1: 1, 2: 2}
	fmt.Println(origin.Defaults(treemap.Map[int, int]{1: 10000, 3: 3}))
	// Output: map[1:1 2:2 3:3]
}

func ExampleMap_Pairs() {
	for _, p := range (treemap.Map[string, int]{"b": 2, "a": 1}).Pairs() {
		fmt.Println(p.Key, p.Value)
	}
	// Output:
	// a 1
	// b 2
}

func ExampleInvert() {
	fmt.Println(treemap.Invert(treemap.Map[string, int]{"one": 1, "two": 2}))
	// Output: map[1:one 2:two]
}

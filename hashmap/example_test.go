package hashmap_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/hashmap"
)

func ExampleMap_Omit() {
	m := hashmap.Map[int, int]{1: 1, 2: 2}
	fmt.Println(m.Omit([]int{1}))
	// Output: map[2:2]
}

func ExampleInvert() {
	fmt.Println(hashmap.Invert(hashmap.Map[string, int]{"a": 1, "b": 2}))
	// Output: map[1:a 2:b]
}

package hashmap_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore/hashmap"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func sample() hashmap.Map[int, uint] {
	return hashmap.Map[int, uint]{1: 1, 2: 2}
}

func isOne(k int, _ uint) bool { return k == 1 }

func TestAccessors(t *testing.T) {
	m := hashmap.Map[string, int]{"a": 1, "b": 2}

	assert.Equal(t, 2, m.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())
	assert.ElementsMatch(t, []int{1, 2}, m.Values())
	assert.ElementsMatch(t, []lo.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	}, m.Pairs())
}

func TestFrom(t *testing.T) {
	m := hashmap.From(
		lo.Entry[string, int]{Key: "x", Value: 1},
		lo.Entry[string, int]{Key: "x", Value: 2},
	)

	assert.Equal(t, hashmap.Map[string, int]{"x": 2}, m)
}

func TestInvert(t *testing.T) {
	assert.Equal(t, hashmap.Map[uint, int]{1: 1, 2: 2}, hashmap.Invert(sample()))
}

func TestInvertDuplicateValues(t *testing.T) {
	inverted := hashmap.Invert(hashmap.Map[string, int]{"a": 1, "b": 1})

	// Either key may win; only the shape is fixed.
	assert.Len(t, inverted, 1)
	assert.Contains(t, []string{"a", "b"}, inverted[1])
}

func TestPick(t *testing.T) {
	for _, tt := range []struct {
		name string
		keys []int
		want hashmap.Map[int, uint]
	}{
		{name: "single key", keys: []int{1}, want: hashmap.Map[int, uint]{1: 1}},
		{name: "missing key is skipped", keys: []int{3}, want: hashmap.Map[int, uint]{}},
		{name: "duplicate keys", keys: []int{1, 1}, want: hashmap.Map[int, uint]{1: 1}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sample().Pick(tt.keys))
		})
	}
}

func TestPickBy(t *testing.T) {
	assert.Equal(t, hashmap.Map[int, uint]{1: 1}, sample().PickBy(isOne))
}

func TestOmit(t *testing.T) {
	assert.Equal(t, hashmap.Map[int, uint]{2: 2}, sample().Omit([]int{1}))
	assert.Equal(t, sample(), sample().Omit(nil))
}

func TestOmitBy(t *testing.T) {
	assert.Equal(t, hashmap.Map[int, uint]{2: 2}, sample().OmitBy(isOne))
}

func TestOmitManyKeys(t *testing.T) {
	m := make(hashmap.Map[int, int])
	for i := 0; i < 20; i++ {
		m[i] = i
	}

	got := m.Omit([]int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18})

	assert.ElementsMatch(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, got.Keys())
}

func TestDefaults(t *testing.T) {
	origin := hashmap.Map[int, uint]{1: 1, 2: 2}
	appends := hashmap.Map[int, uint]{1: 10000, 3: 3}

	assert.Equal(t, hashmap.Map[int, uint]{1: 1, 2: 2, 3: 3}, origin.Defaults(appends))
	assert.Equal(t, hashmap.Map[int, uint]{1: 1, 2: 2}, origin, "receiver must be left intact")
}

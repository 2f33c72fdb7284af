package member

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	for _, tt := range []struct {
		name  string
		items []int
		value int
		want  bool
	}{
		{name: "empty list", items: nil, value: 1, want: false},
		{name: "short list hit", items: []int{1, 2, 3}, value: 2, want: true},
		{name: "short list miss", items: []int{1, 2, 3}, value: 4, want: false},
		{name: "long list hit", items: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, value: 10, want: true},
		{name: "long list miss", items: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, value: 0, want: false},
		{name: "long list with duplicates", items: []int{7, 7, 7, 7, 7, 7, 7, 7, 7}, value: 7, want: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.items)(tt.value))
		})
	}
}

func TestOfCopiesItems(t *testing.T) {
	for _, items := range [][]int{{1, 2, 3}, {1, 2, 3, 4, 5, 6, 7, 8, 9, 10}} {
		in := Of(items)
		items[0] = 42

		assert.True(t, in(1))
		assert.False(t, in(42))
	}
}

func TestFunc(t *testing.T) {
	in := Func([]string{"Go", "Rust"}, strings.EqualFold)

	assert.True(t, in("go"))
	assert.True(t, in("RUST"))
	assert.False(t, in("zig"))
	assert.False(t, Func(nil, strings.EqualFold)("go"))
}

func TestNot(t *testing.T) {
	notIn := Not(Of([]int{1}))

	assert.False(t, notIn(1))
	assert.True(t, notIn(2))
}

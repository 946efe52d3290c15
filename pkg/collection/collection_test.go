package collection_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stockroom/pkg/collection"
)

type item struct {
	key  int
	name string
}

func TestMapAndFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}

	assert.Equal(t, []string{"1", "2", "3", "4"}, collection.Map(in, strconv.Itoa))
	assert.Equal(t, []int{2, 4}, collection.Filter(in, func(v int) bool { return v%2 == 0 }))
	assert.Nil(t, collection.Filter(in, func(v int) bool { return v > 10 }))
}

func TestFirstAndContains(t *testing.T) {
	in := []item{{1, "a"}, {2, "b"}, {2, "c"}}

	got, ok := collection.First(in, func(i item) bool { return i.key == 2 })
	assert.True(t, ok)
	assert.Equal(t, "b", got.name)

	_, ok = collection.First(in, func(i item) bool { return i.key == 9 })
	assert.False(t, ok)

	assert.True(t, collection.Contains(in, func(i item) bool { return i.name == "c" }))
	assert.False(t, collection.Contains([]item{}, func(item) bool { return true }))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, collection.Count([]int{5, 6, 7}, func(v int) bool { return v > 5 }))
}

func TestSortByIsStableAndLeavesInputAlone(t *testing.T) {
	in := []item{{7, "x"}, {5, "first"}, {5, "second"}, {1, "y"}}

	out := collection.SortBy(in, func(a, b item) bool { return a.key < b.key })

	assert.Equal(t, []item{{1, "y"}, {5, "first"}, {5, "second"}, {7, "x"}}, out)
	assert.Equal(t, 7, in[0].key, "input must keep its order")
}

func TestReduce(t *testing.T) {
	sum := collection.Reduce([]int{1, 2, 3}, 10, func(acc, v int) int { return acc + v })
	assert.Equal(t, 16, sum)
}

func TestClone(t *testing.T) {
	assert.Nil(t, collection.Clone[int](nil))

	in := []int{1, 2}
	out := collection.Clone(in)
	out[0] = 9
	assert.Equal(t, 1, in[0])
}

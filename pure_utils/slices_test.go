package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicate(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Deduplicate([]string{"b", "a", "b", "c", "a"}))
	assert.Equal(t, []int{}, Deduplicate([]int{}))
}

func TestIndexBy(t *testing.T) {
	type item struct {
		id    string
		value int
	}
	index := IndexBy([]item{{"a", 1}, {"b", 2}, {"a", 3}}, func(i item) string { return i.id })
	assert.Len(t, index, 2)
	assert.Equal(t, 3, index["a"].value)
}

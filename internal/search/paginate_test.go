package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_MiddlePage(t *testing.T) {
	records := []int{1, 2, 3, 4, 5, 6, 7}

	items, total := Paginate(records, 2, 5)
	assert.Equal(t, 7, total)
	assert.Equal(t, []int{6, 7}, items)
}

func TestPaginate_FirstPage(t *testing.T) {
	records := []int{1, 2, 3, 4, 5, 6, 7}

	items, total := Paginate(records, 1, 5)
	assert.Equal(t, 7, total)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
}

func TestPaginate_PageBeyondData(t *testing.T) {
	records := []int{1, 2, 3}

	items, total := Paginate(records, 9, 5)
	assert.Equal(t, 3, total)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPaginate_Empty(t *testing.T) {
	items, total := Paginate([]int{}, 1, 10)
	assert.Zero(t, total)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPaginate_PageBelowOneClamped(t *testing.T) {
	records := []int{1, 2, 3}

	items, total := Paginate(records, 0, 2)
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{1, 2}, items)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueListOrderPreservation(t *testing.T) {
	list := NewUniqueList[string, string]()

	assert.True(t, list.Add("a", "A"))
	assert.True(t, list.Add("b", "B"))
	assert.True(t, list.Add("c", "C"))

	assert.Equal(t, []string{"A", "B", "C"}, list.Values())
}

func TestUniqueListFirstSeenWins(t *testing.T) {
	list := NewUniqueList[string, string]()

	assert.True(t, list.Add("a", "first"))
	assert.False(t, list.Add("a", "second"))

	assert.Equal(t, 1, list.Len())
	assert.Equal(t, []string{"first"}, list.Values())
}

func TestUniqueListHas(t *testing.T) {
	list := NewUniqueList[int64, string]()

	assert.False(t, list.Has(7))
	list.Add(7, "seven")
	assert.True(t, list.Has(7))
}

func TestUniqueListEmpty(t *testing.T) {
	list := NewUniqueList[string, int]()

	assert.Equal(t, 0, list.Len())
	assert.Empty(t, list.Values())
}

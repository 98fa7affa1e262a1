package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndContains(t *testing.T) {
	s := NewSet[string]()
	assert.Equal(t, 0, s.Len())

	s.Add("a")
	s.Add("b")
	s.Add("a")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("c"))
}

func TestRemove(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})

	s.Remove(2)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(2))

	// Removing a missing element is a no-op.
	s.Remove(42)
	assert.Equal(t, 2, s.Len())
}

func TestToSlice(t *testing.T) {
	s := FromSlice([]string{"x", "y"})
	items := s.ToSlice()
	assert.Len(t, items, 2)
	assert.ElementsMatch(t, []string{"x", "y"}, items)
}

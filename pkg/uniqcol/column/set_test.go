package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSet(t *testing.T) {
	s := NewValueSet()

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"), "re-insert is a no-op")
	assert.False(t, s.Add(""), "empty string is never stored")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Sorted())
}

func TestValueSetSortedIsByteOrder(t *testing.T) {
	s := NewValueSet()
	for _, v := range []string{"banana", "Banana", "apple", "Äpfel", "10", "9", "a b", "a"} {
		s.Add(v)
	}

	assert.Equal(t,
		[]string{"10", "9", "Banana", "a", "a b", "apple", "banana", "Äpfel"},
		s.Sorted())
}

func TestValueSetSortedIsDeterministic(t *testing.T) {
	values := []string{"d", "c", "b", "a", "e"}

	first := NewValueSet()
	for _, v := range values {
		first.Add(v)
	}
	second := NewValueSet()
	for i := len(values) - 1; i >= 0; i-- {
		second.Add(values[i])
	}

	assert.Equal(t, first.Sorted(), second.Sorted())
}

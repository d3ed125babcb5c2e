package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPIDSet(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var s PIDSet
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Contains(1))
		assert.Equal(t, "[]", s.String())
		assert.Empty(t, s.Slice())
	})

	t.Run("keeps insertion order and drops duplicates", func(t *testing.T) {
		s := NewPIDSet(30, 10, 30, 20)
		assert.Equal(t, []ProcessID{30, 10, 20}, s.Slice())
		assert.Equal(t, 3, s.Len())
		assert.True(t, s.Contains(10))
		assert.False(t, s.Add(10))
		assert.True(t, s.Add(40))
		assert.Equal(t, "[30, 10, 20, 40]", s.String())
	})
}

func TestPortString(t *testing.T) {
	assert.Equal(t, "65535", Port(65535).String())
	assert.Equal(t, "0", Port(0).String())
}

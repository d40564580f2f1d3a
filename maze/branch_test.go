package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranches(t *testing.T) {
	b1, b2, b3 := Point{0, 0}, Point{2, 0}, Point{4, 0}

	fill := func() *Branches {
		b := &Branches{}
		b.Push(b1)
		b.Push(b2)
		b.Push(b3)
		return b
	}

	t.Run("PopBack is LIFO", func(t *testing.T) {
		b := fill()
		for _, want := range []Point{b3, b2, b1} {
			got, ok := b.PopBack()
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}
		_, ok := b.PopBack()
		assert.False(t, ok)
	})

	t.Run("PopFront is FIFO", func(t *testing.T) {
		b := fill()
		for _, want := range []Point{b1, b2, b3} {
			got, ok := b.PopFront()
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}
		_, ok := b.PopFront()
		assert.False(t, ok)
	})

	t.Run("RemoveAt keeps the rest", func(t *testing.T) {
		b := fill()
		got, ok := b.RemoveAt(1)
		assert.True(t, ok)
		assert.Equal(t, b2, got)
		assert.Equal(t, []Point{b1, b3}, b.Points())

		_, ok = b.RemoveAt(2)
		assert.False(t, ok)
		_, ok = b.RemoveAt(-1)
		assert.False(t, ok)
		assert.Equal(t, 2, b.Len())
	})

	t.Run("Points is a copy", func(t *testing.T) {
		b := fill()
		points := b.Points()
		points[0] = Point{9, 9}
		assert.Equal(t, b1, b.Points()[0])
	})
}

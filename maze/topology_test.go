package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopologyRectangular(t *testing.T) {
	topo := Topology{Width: 4, Height: 3}

	t.Run("inner neighbour", func(t *testing.T) {
		next, ok := topo.Neighbor(Cell{X: 1, Y: 1}, East)
		assert.True(t, ok)
		assert.Equal(t, Cell{X: 2, Y: 1}, next)
	})

	t.Run("x off grid", func(t *testing.T) {
		_, ok := topo.Neighbor(Cell{X: 0, Y: 1}, West)
		assert.False(t, ok)
		_, ok = topo.Neighbor(Cell{X: 3, Y: 1}, East)
		assert.False(t, ok)
	})

	t.Run("y off grid", func(t *testing.T) {
		next, ok := topo.Neighbor(Cell{X: 2, Y: 0}, North)
		assert.False(t, ok)
		assert.Equal(t, Cell{X: 2, Y: -1}, next)
		_, ok = topo.Neighbor(Cell{X: 2, Y: 2}, South)
		assert.False(t, ok)
	})
}

func TestTopologyCircular(t *testing.T) {
	topo := Topology{Width: 5, Height: 2, Circular: true}

	t.Run("wraps east and west", func(t *testing.T) {
		next, ok := topo.Neighbor(Cell{X: 4, Y: 1}, East)
		assert.True(t, ok)
		assert.Equal(t, Cell{X: 0, Y: 1}, next)

		next, ok = topo.Neighbor(Cell{X: 0, Y: 0}, West)
		assert.True(t, ok)
		assert.Equal(t, Cell{X: 4, Y: 0}, next)
	})

	t.Run("does not wrap north and south", func(t *testing.T) {
		_, ok := topo.Neighbor(Cell{X: 0, Y: 0}, North)
		assert.False(t, ok)
		_, ok = topo.Neighbor(Cell{X: 0, Y: 1}, South)
		assert.False(t, ok)
	})

	t.Run("full lap returns to start", func(t *testing.T) {
		for x := 0; x < topo.Width; x++ {
			start := Cell{X: x, Y: 1}
			c := start
			for i := 0; i < topo.Width; i++ {
				c = topo.Step(c, East)
			}
			assert.Equal(t, start, c)
		}
	})
}

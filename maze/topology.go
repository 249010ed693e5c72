package maze

// Topology maps cells and directions to neighbouring cells. When Circular is
// set the east and west edges are joined; the north and south edges never wrap.
type Topology struct {
	Width    int
	Height   int
	Circular bool
}

// Step moves one cell in direction d. The column wraps on a circular grid,
// the row is left as is and may fall outside the grid.
func (t Topology) Step(c Cell, d Direction) Cell {
	dx, dy := d.delta()
	next := Cell{X: c.X + dx, Y: c.Y + dy}
	if t.Circular && t.Width > 0 {
		next.X = ((next.X % t.Width) + t.Width) % t.Width
	}
	return next
}

// Contains reports whether c lies on the grid.
func (t Topology) Contains(c Cell) bool {
	return c.X >= 0 && c.X < t.Width && c.Y >= 0 && c.Y < t.Height
}

// Neighbor returns the cell adjacent to c in direction d. The second result
// is false when that cell is off the grid.
func (t Topology) Neighbor(c Cell, d Direction) (Cell, bool) {
	next := t.Step(c, d)
	return next, t.Contains(next)
}

package maze

// Flags is the set of markers held by a single cell.
type Flags uint8

const (
	FlagNorth Flags = 1 << iota
	FlagEast
	FlagSouth
	FlagWest
	// FlagAvailable marks a cell not yet carved into the maze.
	FlagAvailable
	// FlagSolveAvail marks a cell the solver has not visited yet.
	FlagSolveAvail

	allWalls = FlagNorth | FlagEast | FlagSouth | FlagWest
)

// wallMap stores the flags of every cell, row by row.
type wallMap struct {
	topo  Topology
	cells []Flags
}

func newWallMap(topo Topology) *wallMap {
	return &wallMap{
		topo:  topo,
		cells: make([]Flags, topo.Width*topo.Height),
	}
}

func (w *wallMap) index(c Cell) int {
	return c.Y*w.topo.Width + c.X
}

// fill resets every cell to exactly f.
func (w *wallMap) fill(f Flags) {
	for i := range w.cells {
		w.cells[i] = f
	}
}

// mark sets f on every cell, leaving other flags untouched.
func (w *wallMap) mark(f Flags) {
	for i := range w.cells {
		w.cells[i] |= f
	}
}

func (w *wallMap) has(c Cell, f Flags) bool {
	return w.cells[w.index(c)]&f == f
}

func (w *wallMap) clear(c Cell, f Flags) {
	w.cells[w.index(c)] &^= f
}

// available reports whether c is on the grid and still uncarved.
func (w *wallMap) available(c Cell) bool {
	return w.topo.Contains(c) && w.has(c, FlagAvailable)
}

// breakWall opens side d of c together with the facing side of its
// neighbour, and takes the neighbour out of the carving pool.
func (w *wallMap) breakWall(c Cell, d Direction) Cell {
	next, ok := w.topo.Neighbor(c, d)
	if !ok {
		return next
	}
	w.clear(c, d.flag())
	w.clear(next, d.Opposite().flag()|FlagAvailable)
	return next
}

// openBoundary removes side d of c without touching any neighbour. It is only
// used for the entrance and exit, which lead off the grid.
func (w *wallMap) openBoundary(c Cell, d Direction) {
	w.clear(c, d.flag())
}

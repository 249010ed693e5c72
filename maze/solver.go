package maze

import "slices"

// solveOrder is the order in which the solver tries directions.
var solveOrder = [4]Direction{North, South, East, West}

type solveFrame struct {
	cell Cell
	next int // index into solveOrder of the next direction to try
}

// canStep reports whether the solver may go from c through side d.
func (m *Maze) canStep(c Cell, d Direction) (Cell, bool) {
	if m.walls.has(c, d.flag()) {
		return Cell{}, false
	}
	next, ok := m.topo.Neighbor(c, d)
	if !ok || !m.walls.has(next, FlagSolveAvail) {
		return Cell{}, false
	}
	return next, true
}

// solve finds the path from the entrance cell to the exit cell with a depth
// first search. The result runs from the exit back to the entrance.
func (m *Maze) solve() ([]Cell, error) {
	m.walls.mark(FlagSolveAvail)

	from := Cell{X: m.entrance, Y: m.topo.Height - 1}
	to := Cell{X: m.exit, Y: 0}

	m.walls.clear(from, FlagSolveAvail)
	stack := []solveFrame{{cell: from}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.cell == to {
			path := make([]Cell, len(stack))
			for i, f := range stack {
				path[i] = f.cell
			}
			slices.Reverse(path)
			return path, nil
		}

		if top.next == len(solveOrder) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := solveOrder[top.next]
		top.next++
		if next, ok := m.canStep(top.cell, d); ok {
			m.walls.clear(next, FlagSolveAvail)
			stack = append(stack, solveFrame{cell: next})
		}
	}

	return nil, ErrUnsolvable
}

package maze

import (
	"iter"
	"slices"
)

// State is where the agent stands relative to the grid.
type State uint8

const (
	// OnGrid means the agent is inside the maze.
	OnGrid State = iota
	// AtEntrance means the agent waits just south of the entrance cell.
	AtEntrance
	// Outside means the agent has left through the exit.
	Outside
)

func (s State) String() string {
	switch s {
	case OnGrid:
		return "OnGrid"
	case AtEntrance:
		return "AtEntrance"
	case Outside:
		return "Outside"
	}
	return "Unknown"
}

// State returns the agent's current state.
func (m *Maze) State() State {
	switch {
	case m.pos.Y < 0:
		return Outside
	case m.pos.Y >= m.topo.Height:
		return AtEntrance
	}
	return OnGrid
}

// Position returns the agent's cell. The row is the height of the maze while
// at the entrance and -1 once outside.
func (m *Maze) Position() Cell {
	return m.pos
}

// CanChangeFacing reports whether the agent stands strictly inside the grid.
func (m *Maze) CanChangeFacing() bool {
	return m.walls != nil && m.State() == OnGrid
}

// AtEntranceBoundary reports whether the agent waits outside the entrance.
func (m *Maze) AtEntranceBoundary() bool {
	return m.walls != nil && m.State() == AtEntrance
}

// IsOutside reports whether the agent has completed the maze.
func (m *Maze) IsOutside() bool {
	return m.walls != nil && m.State() == Outside
}

// Move tries to step the agent one cell in direction d. A move blocked by a
// wall or by the edge of a rectangular grid returns false with a nil error.
// Moving once outside, or on a maze that was never generated, is an error.
func (m *Maze) Move(d Direction) (bool, error) {
	if m.walls == nil {
		return false, ErrIllegalTransition
	}
	if !d.Valid() {
		return false, ErrInvalidDirection
	}

	var next Cell
	switch m.State() {
	case Outside:
		return false, ErrIllegalTransition
	case AtEntrance:
		if d != South {
			return false, nil
		}
		next = Cell{X: m.entrance, Y: m.topo.Height - 1}
	default:
		if m.walls.has(m.pos, d.flag()) {
			return false, nil
		}
		next = m.topo.Step(m.pos, d)
		if next.X < 0 || next.X >= m.topo.Width {
			return false, nil
		}
	}

	prev := m.pos
	m.pos = next
	if m.State() == AtEntrance {
		m.ResetTraversalPath()
		return true, nil
	}
	m.recordStep(prev, next)
	return true, nil
}

// recordStep keeps the trail up to date after a step from prev to next.
// Stepping back onto the last recorded cell undoes it, any other step
// records the cell just left.
func (m *Maze) recordStep(prev, next Cell) {
	last := len(m.trail) - 1
	if last >= 0 && m.trail[last] == next {
		m.trail = m.trail[:last]
		return
	}
	m.trail = append(m.trail, prev)
}

// Trail yields a snapshot of the cells between the exit and the agent: the
// solution cells not reached yet followed by any detour, exit end first.
func (m *Maze) Trail() iter.Seq[Cell] {
	return slices.Values(slices.Clone(m.trail))
}

// TrailLength returns the number of cells currently on the trail.
func (m *Maze) TrailLength() int {
	return len(m.trail)
}

// ResetTraversalPath sets the trail back to the full solution.
func (m *Maze) ResetTraversalPath() {
	m.trail = slices.Clone(m.solution)
}

// Restart puts the agent back outside the entrance with a fresh trail.
func (m *Maze) Restart() {
	m.pos = Cell{X: m.entrance, Y: m.topo.Height}
	m.ResetTraversalPath()
}

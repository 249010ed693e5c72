package maze

// generate carves a perfect maze into a fully walled map using a randomised
// depth first walk. The walk keeps its own stack so that large grids do not
// grow the goroutine stack.
func (m *Maze) generate() {
	m.walls.fill(allWalls | FlagAvailable)

	start := Cell{X: m.rand.Intn(m.topo.Width), Y: m.rand.Intn(m.topo.Height)}
	m.walls.clear(start, FlagAvailable)

	stack := []Cell{start}
	candidates := make([]Direction, 0, len(Directions))
	for len(stack) > 0 {
		cell := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range Directions {
			if next, ok := m.topo.Neighbor(cell, d); ok && m.walls.available(next) {
				candidates = append(candidates, d)
			}
		}

		// Dead end, backtrack.
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[m.rand.Intn(len(candidates))]
		stack = append(stack, m.walls.breakWall(cell, d))
	}
}

// carveOpenings picks the entrance and exit columns and opens the outer
// walls leading to them.
func (m *Maze) carveOpenings() {
	m.entrance = m.rand.Intn(m.topo.Width)
	m.exit = m.rand.Intn(m.topo.Width)

	m.walls.openBoundary(Cell{X: m.exit, Y: 0}, North)
	m.walls.openBoundary(Cell{X: m.entrance, Y: m.topo.Height - 1}, South)
}

package maze

import "strings"

// RenderOptions selects the overlays drawn by Render.
type RenderOptions struct {
	Solution bool // mark the canonical solution with '.'
	Trail    bool // mark the current trail with '*'
	Agent    bool // mark the agent with '@'
}

// Render draws the maze as ASCII art, row 0 at the top. A circular maze is
// drawn unrolled, its joined edge shows as a gap in the outer wall.
func (m *Maze) Render(opts RenderOptions) string {
	marks := make(map[Cell]byte)
	if opts.Solution {
		for _, c := range m.solution {
			marks[c] = '.'
		}
	}
	if opts.Trail {
		for _, c := range m.trail {
			marks[c] = '*'
		}
	}

	var b strings.Builder

	// Top boundary, with the exit gap.
	b.WriteString("+")
	for x := 0; x < m.topo.Width; x++ {
		b.WriteString(wallOrGap(m.IsWall(x, 0, North), "---+", "   +"))
	}
	b.WriteString("\n")

	for y := 0; y < m.topo.Height; y++ {
		// Cell row
		b.WriteString(wallOrGap(m.IsWall(0, y, West), "|", " "))
		for x := 0; x < m.topo.Width; x++ {
			c := Cell{X: x, Y: y}
			mark := byte(' ')
			if v, ok := marks[c]; ok {
				mark = v
			}
			if opts.Agent && m.pos == c {
				mark = '@'
			}
			b.WriteByte(' ')
			b.WriteByte(mark)
			b.WriteByte(' ')
			b.WriteString(wallOrGap(m.IsWall(x, y, East), "|", " "))
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for x := 0; x < m.topo.Width; x++ {
			b.WriteString(wallOrGap(m.IsWall(x, y, South), "---+", "   +"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(RenderOptions{})
}

func wallOrGap(wall bool, w, gap string) string {
	if wall {
		return w
	}
	return gap
}

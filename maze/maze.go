/*
Package maze generates perfect mazes on rectangular or circular grids, solves
them, and tracks an agent walking through them.

A circular maze is a rectangular one whose east and west edges are joined, so
that it can be drawn as a ring. The entrance sits on the southern edge (the
last row) and the exit on the northern edge (row 0).

A Maze is not safe for concurrent use.
*/
package maze

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"slices"
	"time"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrUnsolvable        = errors.New("maze has no solution")
)

// Maze is a generated maze together with its solution and the walking agent.
type Maze struct {
	topo     Topology
	walls    *wallMap
	rand     *rand.Rand
	seed     int64
	entrance int // column of the entrance, on the last row
	exit     int // column of the exit, on row 0

	solution []Cell // exit to entrance
	trail    []Cell
	pos      Cell
}

type options struct {
	seed   int64
	seeded bool
}

// Option configures maze creation.
type Option func(*options)

// WithSeed makes generation deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// New generates a maze of the given dimensions, carves its entrance and exit
// and solves it. The agent starts just outside the entrance.
func New(width, height int, circular bool, opts ...Option) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	topo := Topology{Width: width, Height: height, Circular: circular}
	m := &Maze{
		topo:  topo,
		walls: newWallMap(topo),
		rand:  rand.New(rand.NewSource(o.seed)),
		seed:  o.seed,
	}

	m.generate()
	m.carveOpenings()

	solution, err := m.solve()
	if err != nil {
		return nil, err
	}
	m.solution = solution
	m.Restart()

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.topo.Width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.topo.Height
}

// IsCircular reports whether the east and west edges are joined.
func (m *Maze) IsCircular() bool {
	return m.topo.Circular
}

// Seed returns the seed the maze was generated from.
func (m *Maze) Seed() int64 {
	return m.seed
}

// Topology returns the adjacency rule of the grid.
func (m *Maze) Topology() Topology {
	return m.topo
}

// EntranceColumn returns the column of the entrance on the last row.
func (m *Maze) EntranceColumn() int {
	return m.entrance
}

// ExitColumn returns the column of the exit on row 0.
func (m *Maze) ExitColumn() int {
	return m.exit
}

// IsWall reports whether side d of cell (x, y) is walled. Cells off the grid
// are reported as walled on every side.
func (m *Maze) IsWall(x, y int, d Direction) bool {
	c := Cell{X: x, Y: y}
	if m.walls == nil || !m.topo.Contains(c) || !d.Valid() {
		return true
	}
	return m.walls.has(c, d.flag())
}

// Solution yields the canonical path from the exit cell to the entrance cell.
// It may be ranged over any number of times.
func (m *Maze) Solution() iter.Seq[Cell] {
	return slices.Values(m.solution)
}

// SolutionLength returns the number of cells on the canonical path.
func (m *Maze) SolutionLength() int {
	return len(m.solution)
}

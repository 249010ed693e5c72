// Package game drives a maze from the point of view of someone walking
// through it: a facing direction, forward steps and quarter turns.
package game

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// ErrNoMaze is returned when a walker is used without a maze.
var ErrNoMaze = fmt.Errorf("%w: walker has no maze", maze.ErrIllegalTransition)

// Walker tracks the facing and step count of an agent in a maze.
type Walker struct {
	maze     Maze
	facing   maze.Direction
	mirrored bool // circular maze drawn in the opposite winding
	moves    int
}

// NewWalker places a walker at the entrance, facing into the maze.
//
// When mirrored is set and the maze is circular, east and west are swapped
// before moving, for views that draw the ring anticlockwise.
func NewWalker(m Maze, mirrored bool) *Walker {
	return &Walker{
		maze:     m,
		facing:   maze.North,
		mirrored: mirrored,
	}
}

// Facing returns the direction the walker looks at.
func (w *Walker) Facing() maze.Direction {
	return w.facing
}

// Moves returns the number of successful steps taken.
func (w *Walker) Moves() int {
	return w.moves
}

// Completed reports whether the walker left the maze through the exit.
func (w *Walker) Completed() bool {
	return w.maze != nil && w.maze.IsOutside()
}

// Forward steps one cell in the facing direction. From the entrance the
// only step available is the one onto the grid. Walking back out of the
// entrance turns the walker round to face the maze again.
func (w *Walker) Forward() (bool, error) {
	if w.maze == nil {
		return false, ErrNoMaze
	}

	d := w.facing
	switch {
	case w.maze.AtEntranceBoundary():
		d = maze.South
	case w.mirrored && w.maze.IsCircular():
		d = mirror(d)
	}

	ok, err := w.maze.Move(d)
	if err != nil || !ok {
		return ok, err
	}

	w.moves++
	if w.maze.AtEntranceBoundary() {
		w.facing = maze.North
	}
	return true, nil
}

// Step moves one cell in an absolute direction without changing the facing.
func (w *Walker) Step(d maze.Direction) (bool, error) {
	if w.maze == nil {
		return false, ErrNoMaze
	}

	ok, err := w.maze.Move(d)
	if ok {
		w.moves++
	}
	return ok, err
}

// TurnLeft turns a quarter anticlockwise. Turning is only possible on the grid.
func (w *Walker) TurnLeft() (bool, error) {
	return w.turn(maze.Direction.TurnLeft)
}

// TurnRight turns a quarter clockwise. Turning is only possible on the grid.
func (w *Walker) TurnRight() (bool, error) {
	return w.turn(maze.Direction.TurnRight)
}

func (w *Walker) turn(rotate func(maze.Direction) maze.Direction) (bool, error) {
	if w.maze == nil {
		return false, ErrNoMaze
	}
	if !w.maze.CanChangeFacing() {
		return false, nil
	}
	w.facing = rotate(w.facing)
	return true, nil
}

// Reset sends the walker back to the entrance and clears its step count.
func (w *Walker) Reset() error {
	if w.maze == nil {
		return ErrNoMaze
	}
	w.maze.Restart()
	w.facing = maze.North
	w.moves = 0
	return nil
}

// mirror swaps east and west, leaving north and south alone.
func mirror(d maze.Direction) maze.Direction {
	switch d {
	case maze.East:
		return maze.West
	case maze.West:
		return maze.East
	}
	return d
}

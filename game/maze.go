package game

import "github.com/beka-birhanu/vinom-maze/maze"

// Maze defines the traversal methods a walker needs from a maze.
type Maze interface {
	Move(d maze.Direction) (bool, error)
	CanChangeFacing() bool
	AtEntranceBoundary() bool
	IsOutside() bool
	IsCircular() bool
	Restart()
}

var _ Maze = &maze.Maze{}

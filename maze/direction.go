package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions, in clockwise order.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four directions in their cyclic order.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"North", "East", "South", "West"}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnLeft returns the direction faced after a quarter turn anticlockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// TurnRight returns the direction faced after a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// delta returns the column and row offsets of one step in direction d.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// flag returns the wall flag guarding side d of a cell.
func (d Direction) flag() Flags {
	return 1 << d
}

// ParseDirection accepts a direction name or its initial letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

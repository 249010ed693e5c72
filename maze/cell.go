package maze

import "fmt"

// Cell is a grid coordinate. X is the column and grows eastwards, Y is the
// row and grows southwards.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

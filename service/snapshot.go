package service

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// CellWalls lists the walls standing around one cell.
type CellWalls struct {
	North bool `json:"north"`
	East  bool `json:"east"`
	South bool `json:"south"`
	West  bool `json:"west"`
}

// Snapshot is a read-only view of a session at one point in time.
type Snapshot struct {
	ID        uuid.UUID     `json:"id"`
	PlayerID  uuid.UUID     `json:"player_id"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Circular  bool          `json:"circular"`
	Seed      int64         `json:"seed"`
	Entrance  int           `json:"entrance"`
	Exit      int           `json:"exit"`
	Position  maze.Cell     `json:"position"`
	State     string        `json:"state"`
	Facing    string        `json:"facing"`
	Moves     int           `json:"moves"`
	Completed bool          `json:"completed"`
	Walls     [][]CellWalls `json:"walls"` // indexed [y][x]
	CreatedAt time.Time     `json:"created_at"`
}

// snapshot copies the session state. The caller holds the session lock.
func (s *session) snapshot() *Snapshot {
	m := s.maze
	walls := make([][]CellWalls, m.Height())
	for y := range walls {
		walls[y] = make([]CellWalls, m.Width())
		for x := range walls[y] {
			walls[y][x] = CellWalls{
				North: m.IsWall(x, y, maze.North),
				East:  m.IsWall(x, y, maze.East),
				South: m.IsWall(x, y, maze.South),
				West:  m.IsWall(x, y, maze.West),
			}
		}
	}

	return &Snapshot{
		ID:        s.id,
		PlayerID:  s.playerID,
		Width:     m.Width(),
		Height:    m.Height(),
		Circular:  m.IsCircular(),
		Seed:      m.Seed(),
		Entrance:  m.EntranceColumn(),
		Exit:      m.ExitColumn(),
		Position:  m.Position(),
		State:     m.State().String(),
		Facing:    s.walker.Facing().String(),
		Moves:     s.walker.Moves(),
		Completed: s.walker.Completed(),
		Walls:     walls,
		CreatedAt: s.createdAt,
	}
}

// Package mazeapi exposes maze sessions over HTTP.
package mazeapi

import "github.com/beka-birhanu/vinom-maze/maze"

// CreateRequest asks for a new maze. Zero dimensions use the server defaults.
type CreateRequest struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Circular bool   `json:"circular"`
	Seed     *int64 `json:"seed"`
	Mirrored bool   `json:"mirrored"`
}

// CreateResponse identifies the created session.
type CreateResponse struct {
	ID string `json:"id"`
}

// MoveRequest moves the agent in an absolute direction (north, east, south, west).
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// WalkRequest moves the agent relative to its facing (forward, left, right).
type WalkRequest struct {
	Action string `json:"action" binding:"required"`
}

// MoveResponse reports whether a move happened and where the agent is now.
type MoveResponse struct {
	Moved     bool      `json:"moved"`
	Position  maze.Cell `json:"position"`
	State     string    `json:"state"`
	Facing    string    `json:"facing"`
	Moves     int       `json:"moves"`
	Completed bool      `json:"completed"`
}

// PathResponse lists cells from the exit end.
type PathResponse struct {
	Cells []maze.Cell `json:"cells"`
}

// RecordResponse is one entry of a records board.
type RecordResponse struct {
	PlayerID string `json:"player_id"`
	Moves    int    `json:"moves"`
}

package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// PlayerRepo defines the persistence operations for registered players.
type PlayerRepo interface {
	// Save inserts or updates a player.
	// It returns domain.ErrUsernameTaken when another player holds the username.
	Save(ctx context.Context, player *dmn.Player) error

	// ByID retrieves a player by ID.
	// It returns domain.ErrPlayerNotFound when there is none.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Player, error)

	// ByUsername retrieves a player by username.
	// It returns domain.ErrPlayerNotFound when there is none.
	ByUsername(ctx context.Context, username string) (*dmn.Player, error)
}

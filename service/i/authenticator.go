package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// Authenticator registers players and issues their tokens.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*dmn.Player, error)
	SignIn(ctx context.Context, username, password string) (*dmn.Player, string, error)
	Guest() (*dmn.Player, string, error)
}

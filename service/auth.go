package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	ClaimPlayerID = "playerID"
	ClaimUsername = "username"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountsDisabled   = errors.New("player accounts are not available")
)

var _ i.Authenticator = &Auth{}

// Auth registers players and signs their tokens. Guests get a token
// without an account.
type Auth struct {
	players   i.PlayerRepo
	tokenizer i.Tokenizer
	tokenTTL  time.Duration
}

// NewAuthService creates an Auth. players may be nil, in which case only
// guest tokens are available.
func NewAuthService(players i.PlayerRepo, tokenizer i.Tokenizer, tokenTTL time.Duration) (*Auth, error) {
	if tokenizer == nil {
		return nil, errors.New("auth service needs a tokenizer")
	}
	return &Auth{
		players:   players,
		tokenizer: tokenizer,
		tokenTTL:  tokenTTL,
	}, nil
}

// Register creates an account for username.
func (a *Auth) Register(ctx context.Context, username, password string) (*dmn.Player, error) {
	if a.players == nil {
		return nil, ErrAccountsDisabled
	}

	if _, err := a.players.ByUsername(ctx, username); err == nil {
		return nil, dmn.ErrUsernameTaken
	} else if !errors.Is(err, dmn.ErrPlayerNotFound) {
		return nil, err
	}

	player, err := dmn.NewPlayer(dmn.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.players.Save(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// SignIn checks the credentials and returns the player with a fresh token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.Player, string, error) {
	if a.players == nil {
		return nil, "", ErrAccountsDisabled
	}

	player, err := a.players.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dmn.ErrPlayerNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !player.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]any{
		ClaimPlayerID: player.ID.String(),
		ClaimUsername: player.Username,
	}, a.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("signing token: %w", err)
	}
	return player, token, nil
}

// Guest issues a token for a new anonymous player.
func (a *Auth) Guest() (*dmn.Player, string, error) {
	player := &dmn.Player{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	token, err := a.tokenizer.Generate(map[string]any{ClaimPlayerID: player.ID.String()}, a.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("signing token: %w", err)
	}
	return player, token, nil
}

package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-horse-battery-staple-42"

func TestNewPlayer(t *testing.T) {
	id := uuid.New()
	p, err := NewPlayer(PlayerConfig{ID: id, Username: "maze_runner", PlainPassword: strongPassword})
	require.NoError(t, err)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, "maze_runner", p.Username)
	assert.NotEqual(t, strongPassword, p.PasswordHash)
	assert.False(t, p.CreatedAt.IsZero())
	assert.True(t, p.VerifyPassword(strongPassword))
	assert.False(t, p.VerifyPassword("wrong"))
}

func TestNewPlayerValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"short username", "ab", strongPassword, ErrUsernameTooShort},
		{"long username", "a_very_long_username_indeed", strongPassword, ErrUsernameTooLong},
		{"bad characters", "maze runner", strongPassword, ErrUsernameFormat},
		{"weak password", "maze_runner", "password", ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlayer(PlayerConfig{ID: uuid.New(), Username: tt.username, PlainPassword: tt.password})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

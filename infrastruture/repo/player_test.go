package repo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newTestRepo connects to the MongoDB named by MONGO_TEST_URI and skips otherwise.
func newTestRepo(t *testing.T) *PlayerRepo {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	dbName := fmt.Sprintf("vinom_maze_test_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		_ = client.Database(dbName).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	r := NewPlayerRepo(client, dbName, "players")
	require.NoError(t, r.EnsureIndexes(ctx))
	return r
}

func TestPlayerRepo(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	p := &dmn.Player{ID: uuid.New(), Username: "walker", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, r.Save(ctx, p))

	byID, err := r.ByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Username, byID.Username)

	byName, err := r.ByUsername(ctx, "walker")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	_, err = r.ByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, dmn.ErrPlayerNotFound)

	clash := &dmn.Player{ID: uuid.New(), Username: "walker", PasswordHash: "other"}
	assert.ErrorIs(t, r.Save(ctx, clash), dmn.ErrUsernameTaken)
}

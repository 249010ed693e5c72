package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

var _ i.PlayerRepo = &PlayerRepo{}

// PlayerRepo handles the persistence of registered players.
type PlayerRepo struct {
	collection *mongo.Collection
}

// NewPlayerRepo creates a new PlayerRepo with the given MongoDB client, database name, and collection name.
func NewPlayerRepo(client *mongo.Client, dbName, collectionName string) *PlayerRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &PlayerRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the unique username index.
func (r *PlayerRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates a player.
func (r *PlayerRepo) Save(ctx context.Context, player *dmn.Player) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": player.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     player.Username,
			"passwordHash": player.PasswordHash,
			"updatedAt":    time.Now(),
		},
		"$setOnInsert": bson.M{
			"createdAt": player.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dmn.ErrUsernameTaken
		}
		return fmt.Errorf("saving player: %w", err)
	}

	return nil
}

// ByID retrieves a player by ID.
func (r *PlayerRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Player, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// ByUsername retrieves a player by username.
func (r *PlayerRepo) ByUsername(ctx context.Context, username string) (*dmn.Player, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *PlayerRepo) findOne(ctx context.Context, filter bson.M) (*dmn.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var player dmn.Player
	if err := r.collection.FindOne(ctx, filter).Decode(&player); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("finding player: %w", err)
	}
	return &player, nil
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction/repository"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/log"
)

const collectionExtractions = "extraction_results"

type implRepository struct {
	l          log.Logger
	collection *mongo.Collection
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a MongoDB-backed Repository for the extraction domain.
// The concrete type is returned so callers can run EnsureIndexes at startup.
func New(l log.Logger, db *mongo.Database) *implRepository {
	if db == nil {
		panic("extraction/repository/mongo: db is required")
	}
	return &implRepository{
		l:          l,
		collection: db.Collection(collectionExtractions),
	}
}

// NewClient connects to MongoDB and verifies the connection.
func NewClient(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(100).
		SetMaxConnIdleTime(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the list query depends on.
func (r *implRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

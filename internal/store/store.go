package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an id lookup matches no document.
var ErrNotFound = errors.New("not found")

// Store wraps the MongoDB connection. It is constructed once in main and
// injected into the handlers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and verifies the connection.
func NewStore(uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Close closes the MongoDB connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) products() *mongo.Collection {
	return s.db.Collection("products")
}

func (s *Store) categories() *mongo.Collection {
	return s.db.Collection("categories")
}

func (s *Store) orders() *mongo.Collection {
	return s.db.Collection("orders")
}

func (s *Store) chatMessages() *mongo.Collection {
	return s.db.Collection("chat_messages")
}

package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store bundles the Mongo client with the collection handles the service
// uses. It is constructed once at startup and passed into the handlers, so
// nothing reads a half-initialized global while the connection is still
// being established.
type Store struct {
	Client   *mongo.Client
	Users    *mongo.Collection
	Posts    *mongo.Collection
	Sessions *mongo.Collection
}

// Connect dials MongoDB, verifies the connection with a ping, and returns a
// ready Store.
func Connect(ctx context.Context, uri string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database("mydb")
	store := &Store{
		Client:   client,
		Users:    db.Collection("users"),
		Posts:    db.Collection("posts"),
		Sessions: db.Collection("sessions"),
	}

	log.Println("Connected to MongoDB successfully")
	return store, nil
}

func (s *Store) Disconnect() error {
	if s == nil || s.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}

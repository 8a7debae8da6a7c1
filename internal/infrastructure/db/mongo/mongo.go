package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

const (
	usersCollection    = "users"
	productsCollection = "products"
	messagesCollection = "messages"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the repositories rely on: the unique
// keys on users.username and products.ref (duplicate-key errors from these
// become the Duplicate* domain errors) and the conversation lookup index on
// messages.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("users username index: %w", err)
	}

	if _, err := db.Collection(productsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ref", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("products ref index: %w", err)
	}

	if _, err := db.Collection(messagesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "from", Value: 1}, {Key: "sent_at", Value: 1}}},
		{Keys: bson.D{{Key: "to", Value: 1}, {Key: "sent_at", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("messages indexes: %w", err)
	}

	return nil
}

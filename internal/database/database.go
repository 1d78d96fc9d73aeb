package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medsupply/erp-api/internal/config"
)

// Connect opens the MongoDB client and returns the configured database.
// The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique indexes the application depends on.
// The returnNumber index is load-bearing: concurrent return creations can
// race on the count-then-assign step, and the index is what turns a
// collision into a duplicate-key write failure instead of silent reuse.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("returns").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "returnNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes declares the unique indexes the stores rely on. The
// application-level existence checks only exist for friendlier error
// messages; these indexes are the authoritative guard when two requests race
// on the same pair.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}

	_, err = db.Collection("follows").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "follower", Value: 1}, {Key: "followee", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("creating follow index: %w", err)
	}

	_, err = db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post", Value: 1}, {Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("creating like index: %w", err)
	}

	return nil
}

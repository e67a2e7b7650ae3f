package repositories

import (
	"context"
	"time"

	"github.com/anonto42/instapix/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	GetLike(ctx context.Context, postID primitive.ObjectID, username string) (*models.Like, error)
	DeleteLike(ctx context.Context, id primitive.ObjectID) error
}

// MongoLikeRepository implements LikeRepository for MongoDB
type MongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new MongoLikeRepository
func NewMongoLikeRepository(db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{collection: db.Collection("likes")}
}

// CreateLike inserts a like. A second like for the same (post, username)
// pair surfaces as ErrDuplicate via the compound unique index.
func (r *MongoLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	like.ID = primitive.NewObjectID()
	like.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, like)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// GetLike retrieves the like for a (post, username) pair
func (r *MongoLikeRepository) GetLike(ctx context.Context, postID primitive.ObjectID, username string) (*models.Like, error) {
	var like models.Like
	filter := bson.M{"post": postID, "username": username}
	if err := r.collection.FindOne(ctx, filter).Decode(&like); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &like, nil
}

// DeleteLike hard-deletes a like by id
func (r *MongoLikeRepository) DeleteLike(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

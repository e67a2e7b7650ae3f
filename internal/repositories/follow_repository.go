package repositories

import (
	"context"
	"time"

	"github.com/anonto42/instapix/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FollowRepository defines the interface for follow edge operations
type FollowRepository interface {
	CreateFollow(ctx context.Context, follow *models.Follow) error
	GetFollow(ctx context.Context, follower, followee string) (*models.Follow, error)
	GetFollowByID(ctx context.Context, id string) (*models.Follow, error)
	UpdateFollowStatus(ctx context.Context, id primitive.ObjectID, status models.FollowStatus) error
	DeleteFollow(ctx context.Context, id primitive.ObjectID) error
	GetPendingByFollowee(ctx context.Context, followee string) ([]models.Follow, error)
}

// MongoFollowRepository implements FollowRepository for MongoDB
type MongoFollowRepository struct {
	collection *mongo.Collection
}

// NewMongoFollowRepository creates a new MongoFollowRepository
func NewMongoFollowRepository(db *mongo.Database) *MongoFollowRepository {
	return &MongoFollowRepository{collection: db.Collection("follows")}
}

// CreateFollow inserts a follow edge. A second edge for the same ordered
// (follower, followee) pair surfaces as ErrDuplicate via the compound
// unique index, whatever status the existing edge has.
func (r *MongoFollowRepository) CreateFollow(ctx context.Context, follow *models.Follow) error {
	follow.ID = primitive.NewObjectID()
	follow.CreatedAt = time.Now()
	follow.UpdatedAt = follow.CreatedAt
	if follow.Status == "" {
		follow.Status = models.FollowPending
	}
	_, err := r.collection.InsertOne(ctx, follow)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// GetFollow retrieves the edge for an ordered (follower, followee) pair
func (r *MongoFollowRepository) GetFollow(ctx context.Context, follower, followee string) (*models.Follow, error) {
	var follow models.Follow
	filter := bson.M{"follower": follower, "followee": followee}
	if err := r.collection.FindOne(ctx, filter).Decode(&follow); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &follow, nil
}

// GetFollowByID retrieves an edge by its hex object id
func (r *MongoFollowRepository) GetFollowByID(ctx context.Context, id string) (*models.Follow, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var follow models.Follow
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&follow); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &follow, nil
}

// UpdateFollowStatus sets the status field of an edge
func (r *MongoFollowRepository) UpdateFollowStatus(ctx context.Context, id primitive.ObjectID, status models.FollowStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFollow removes an edge entirely, regardless of status
func (r *MongoFollowRepository) DeleteFollow(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPendingByFollowee retrieves requests awaiting the followee's decision,
// oldest first
func (r *MongoFollowRepository) GetPendingByFollowee(ctx context.Context, followee string) ([]models.Follow, error) {
	filter := bson.M{"followee": followee, "status": models.FollowPending}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	follows := []models.Follow{}
	if err = cursor.All(ctx, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like marks that a user liked a post. The compound unique index on
// (post, username) guarantees at most one like per pair even under
// concurrent inserts.
type Like struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID    primitive.ObjectID `json:"post" bson:"post"`
	Username  string             `json:"username" bson:"username"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents an image post stored in the "posts" collection.
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Caption   string             `json:"caption" bson:"caption"`         // optional, defaults to ""
	ImgURL    string             `json:"img_url" bson:"img_url"`         // required, set after media upload
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`         // owning user
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the multipart form fields for creating a post.
// The image itself arrives as the "image" file part.
type CreatePostRequest struct {
	Caption string `json:"caption" form:"caption" validate:"omitempty,max=2200"`
}

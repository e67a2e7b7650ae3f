package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProfileImage is used when a user registers without an avatar.
const DefaultProfileImage = "https://storage.googleapis.com/instapix-media/defaults/avatar.png"

// User represents an account document in the "users" collection.
// Username and email carry unique indexes (see repositories.EnsureIndexes).
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	Bio          string             `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfileImage string             `json:"profile_image" bson:"profile_image"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=30"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Bio          string `json:"bio,omitempty" validate:"omitempty,max=160"`
	ProfileImage string `json:"profile_image,omitempty" validate:"omitempty,url"`
}

// LoginRequest defines the request body for login. Either username or email
// may identify the account.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the sanitized user payload returned by auth endpoints.
type UserProfile struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profile_image"`
}

// Profile strips credentials and internal fields for responses.
func (u *User) Profile() UserProfile {
	return UserProfile{
		Username:     u.Username,
		Email:        u.Email,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
	}
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// The token is the single source of truth for the acting identity.
type JwtCustomClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

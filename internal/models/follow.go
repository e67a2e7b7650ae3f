package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowStatus is the state of a follow request. The set is closed: a record
// starts as pending and the followee moves it to accepted or rejected.
type FollowStatus string

const (
	FollowPending  FollowStatus = "pending"
	FollowAccepted FollowStatus = "accepted"
	FollowRejected FollowStatus = "rejected"
)

// ParseFollowDecision maps a caller-supplied response literal onto a follow
// status. Only "accepted" and "rejected" are valid decisions; "pending" is
// the creation default and can never be chosen.
func ParseFollowDecision(s string) (FollowStatus, bool) {
	switch FollowStatus(s) {
	case FollowAccepted:
		return FollowAccepted, true
	case FollowRejected:
		return FollowRejected, true
	default:
		return "", false
	}
}

// Follow is a directed edge from follower to followee, both identified by
// username. The compound unique index on (follower, followee) allows at most
// one edge per ordered pair regardless of status.
type Follow struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Follower  string             `json:"follower" bson:"follower"`
	Followee  string             `json:"followee" bson:"followee"`
	Status    FollowStatus       `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// RespondFollowRequest defines the request body for answering a follow request
type RespondFollowRequest struct {
	Response string `json:"response" validate:"required"`
}

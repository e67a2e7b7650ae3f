package services

import "errors"

// Typed failures returned by the services. Handlers map these onto HTTP
// statuses at the request boundary; any other error is a store failure and
// becomes a generic 500.
var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyFollowing = errors.New("already following")
	ErrFollowNotFound   = errors.New("follow request not found")
	ErrInvalidDecision  = errors.New("decision must be accepted or rejected")
	ErrNotResponder     = errors.New("only the followee may respond to this request")

	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the post owner")
	ErrMissingImage = errors.New("image url is required")
	ErrNotLiked     = errors.New("post has not been liked")
)

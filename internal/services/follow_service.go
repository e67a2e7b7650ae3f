package services

import (
	"context"
	"errors"

	"github.com/anonto42/instapix/backend/internal/models"
	"github.com/anonto42/instapix/backend/internal/repositories"
)

// FollowService owns the rules of the follow-request relationship: who may
// create, answer, and remove an edge. It is transport-independent; callers
// supply the verified identity and get a record or a typed error back.
type FollowService struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowService {
	return &FollowService{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// CreateFollowRequest creates a pending edge from follower to followee.
// Self-edges are forbidden, the followee must exist, and at most one edge may
// exist per ordered pair in any status. The existence check here is only a
// fast path for a better message; the unique index settles races.
func (s *FollowService) CreateFollowRequest(ctx context.Context, follower, followee string) (*models.Follow, error) {
	if follower == followee {
		return nil, ErrSelfFollow
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, followee); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.followRepository.GetFollow(ctx, follower, followee); err == nil {
		return nil, ErrAlreadyFollowing
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	follow := &models.Follow{
		Follower: follower,
		Followee: followee,
		Status:   models.FollowPending,
	}
	if err := s.followRepository.CreateFollow(ctx, follow); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}
	return follow, nil
}

// Unfollow removes the edge from follower to followee, whatever its status.
// A missing edge is not an error; the bool reports whether an edge existed.
func (s *FollowService) Unfollow(ctx context.Context, follower, followee string) (bool, error) {
	follow, err := s.followRepository.GetFollow(ctx, follower, followee)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.followRepository.DeleteFollow(ctx, follow.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// someone else unfollowed first; same outcome
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Respond applies the followee's decision to a follow request. The decision
// literal must be "accepted" or "rejected", and only the followee named on
// the edge may answer it.
func (s *FollowService) Respond(ctx context.Context, followID, decision, responder string) (*models.Follow, error) {
	status, ok := models.ParseFollowDecision(decision)
	if !ok {
		return nil, ErrInvalidDecision
	}

	follow, err := s.followRepository.GetFollowByID(ctx, followID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, err
	}

	if follow.Followee != responder {
		return nil, ErrNotResponder
	}

	if err := s.followRepository.UpdateFollowStatus(ctx, follow.ID, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, err
	}
	follow.Status = status
	return follow, nil
}

// PendingRequests lists the requests awaiting the followee's decision.
func (s *FollowService) PendingRequests(ctx context.Context, followee string) ([]models.Follow, error) {
	return s.followRepository.GetPendingByFollowee(ctx, followee)
}

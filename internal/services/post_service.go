package services

import (
	"context"
	"errors"

	"github.com/anonto42/instapix/backend/internal/models"
	"github.com/anonto42/instapix/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostService owns the post and like rules: ownership of posts and the
// one-like-per-user invariant. Posts are private to their owner; there is no
// sharing model, and follow status grants no access.
type PostService struct {
	postRepository repositories.PostRepository
	likeRepository repositories.LikeRepository
	userRepository repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepository: postRepo,
		likeRepository: likeRepo,
		userRepository: userRepo,
	}
}

// CreatePost persists a post for the owner. The image has already been
// uploaded through the media collaborator; imgURL must be non-empty. The
// owner is re-checked against the store even though the caller is
// authenticated.
func (s *PostService) CreatePost(ctx context.Context, ownerID, caption, imgURL string) (*models.Post, error) {
	owner, err := s.userRepository.GetUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if imgURL == "" {
		return nil, ErrMissingImage
	}

	post := &models.Post{
		Caption: caption,
		ImgURL:  imgURL,
		UserID:  owner.ID,
	}
	if err := s.postRepository.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPostsByOwner returns every post owned by the caller. An empty result
// is a success, not an error.
func (s *PostService) ListPostsByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return s.postRepository.GetPostsByUserID(ctx, objID)
}

// GetPostDetail returns the post only to its owner.
func (s *PostService) GetPostDetail(ctx context.Context, postID, requesterID string) (*models.Post, error) {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.UserID.Hex() != requesterID {
		return nil, ErrNotPostOwner
	}
	return post, nil
}

// DeletePost removes a post; only its owner may do so. Likes on the post are
// left in place, single-document mutations only.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.UserID.Hex() != requesterID {
		return ErrNotPostOwner
	}

	if err := s.postRepository.DeletePost(ctx, post.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// LikePost records that username liked the post. Liking twice is benign: the
// existing like comes back with created=false and no second record is made.
// If two requests race past the existence check, the unique index decides
// and the loser falls back to the winner's record.
func (s *PostService) LikePost(ctx context.Context, postID, username string) (*models.Like, bool, error) {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, false, ErrPostNotFound
		}
		return nil, false, err
	}

	if existing, err := s.likeRepository.GetLike(ctx, post.ID, username); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, err
	}

	like := &models.Like{
		PostID:   post.ID,
		Username: username,
	}
	if err := s.likeRepository.CreateLike(ctx, like); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			existing, gerr := s.likeRepository.GetLike(ctx, post.ID, username)
			if gerr == nil {
				return existing, false, nil
			}
			return nil, false, err
		}
		return nil, false, err
	}
	return like, true, nil
}

// UnlikePost deletes the like for (post, username) and returns the deleted
// record. Unliking a post that was never liked by that user is a failure.
func (s *PostService) UnlikePost(ctx context.Context, postID, username string) (*models.Like, error) {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	like, err := s.likeRepository.GetLike(ctx, post.ID, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotLiked
		}
		return nil, err
	}

	if err := s.likeRepository.DeleteLike(ctx, like.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	return like, nil
}

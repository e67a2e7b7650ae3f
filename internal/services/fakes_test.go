package services

import (
	"context"
	"sort"
	"time"

	"github.com/anonto42/instapix/backend/internal/models"
	"github.com/anonto42/instapix/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories for the service tests. They enforce the same
// uniqueness rules the Mongo indexes do, so the invariants can be exercised
// without a database.

type fakeUserRepo struct {
	users map[string]*models.User // by username
}

func newFakeUserRepo(usernames ...string) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, name := range usernames {
		r.users[name] = &models.User{
			ID:       primitive.NewObjectID(),
			Username: name,
			Email:    name + "@example.com",
		}
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetUserByUsernameOrEmail(_ context.Context, username, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeFollowRepo struct {
	follows map[string]*models.Follow // by hex id
	seq     int                       // drives distinct creation times
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: map[string]*models.Follow{}}
}

func (r *fakeFollowRepo) CreateFollow(_ context.Context, follow *models.Follow) error {
	for _, f := range r.follows {
		if f.Follower == follow.Follower && f.Followee == follow.Followee {
			return repositories.ErrDuplicate
		}
	}
	follow.ID = primitive.NewObjectID()
	r.seq++
	follow.CreatedAt = time.Unix(int64(r.seq), 0)
	if follow.Status == "" {
		follow.Status = models.FollowPending
	}
	copied := *follow
	r.follows[follow.ID.Hex()] = &copied
	return nil
}

func (r *fakeFollowRepo) GetFollow(_ context.Context, follower, followee string) (*models.Follow, error) {
	for _, f := range r.follows {
		if f.Follower == follower && f.Followee == followee {
			copied := *f
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeFollowRepo) GetFollowByID(_ context.Context, id string) (*models.Follow, error) {
	if f, ok := r.follows[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeFollowRepo) UpdateFollowStatus(_ context.Context, id primitive.ObjectID, status models.FollowStatus) error {
	f, ok := r.follows[id.Hex()]
	if !ok {
		return repositories.ErrNotFound
	}
	f.Status = status
	return nil
}

func (r *fakeFollowRepo) DeleteFollow(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.follows[id.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.follows, id.Hex())
	return nil
}

func (r *fakeFollowRepo) GetPendingByFollowee(_ context.Context, followee string) ([]models.Follow, error) {
	pending := []models.Follow{}
	for _, f := range r.follows {
		if f.Followee == followee && f.Status == models.FollowPending {
			pending = append(pending, *f)
		}
	}
	// oldest first, like the created_at sort on the real query
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

type fakePostRepo struct {
	posts map[string]*models.Post // by hex id
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	copied := *post
	r.posts[post.ID.Hex()] = &copied
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	if p, ok := r.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePostRepo) GetPostsByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	posts := []models.Post{}
	for _, p := range r.posts {
		if p.UserID == userID {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.posts[id.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.posts, id.Hex())
	return nil
}

type fakeLikeRepo struct {
	likes map[string]*models.Like // by hex id
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[string]*models.Like{}}
}

func (r *fakeLikeRepo) CreateLike(_ context.Context, like *models.Like) error {
	for _, l := range r.likes {
		if l.PostID == like.PostID && l.Username == like.Username {
			return repositories.ErrDuplicate
		}
	}
	like.ID = primitive.NewObjectID()
	copied := *like
	r.likes[like.ID.Hex()] = &copied
	return nil
}

func (r *fakeLikeRepo) GetLike(_ context.Context, postID primitive.ObjectID, username string) (*models.Like, error) {
	for _, l := range r.likes {
		if l.PostID == postID && l.Username == username {
			copied := *l
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeLikeRepo) DeleteLike(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.likes[id.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.likes, id.Hex())
	return nil
}

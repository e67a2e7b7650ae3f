package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/anonto42/instapix/backend/internal/models"
	"github.com/anonto42/instapix/backend/internal/services"
	"github.com/anonto42/instapix/backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

// PostHandler handles post and like HTTP requests
type PostHandler struct {
	postService *services.PostService
	uploader    storage.Uploader
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService, uploader storage.Uploader) *PostHandler {
	return &PostHandler{
		postService: postService,
		uploader:    uploader,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:postid", h.GetPostDetail)
	g.DELETE("/posts/:postid", h.DeletePost)
	g.POST("/posts/:postid/like", h.LikePost)
	g.POST("/posts/:postid/unlike", h.UnlikePost)
}

// CreatePost uploads the image through the media collaborator and persists
// the post for the authenticated owner.
func (h *PostHandler) CreatePost(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read image file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read image file")
	}

	imgURL, err := h.uploader.Upload(c.Request().Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "image upload failed")
	}

	post, err := h.postService.CreatePost(c.Request().Context(), claims.UserID, req.Caption, imgURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusUnauthorized, "user is unauthorized")
		case errors.Is(err, services.ErrMissingImage):
			return echo.NewHTTPError(http.StatusBadRequest, "image url is required")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "post is created",
		"post":    post,
	})
}

// GetPosts lists the authenticated user's own posts
func (h *PostHandler) GetPosts(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	posts, err := h.postService.ListPostsByOwner(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "all post fetch",
		"posts":   posts,
	})
}

// GetPostDetail returns a single post to its owner only
func (h *PostHandler) GetPostDetail(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("postid")

	post, err := h.postService.GetPostDetail(c.Request().Context(), postID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		case errors.Is(err, services.ErrNotPostOwner):
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden. You are not authorized to view this post.")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Post fetched successfully.",
		"post":    post,
	})
}

// DeletePost deletes a post; only the owner may delete it
func (h *PostHandler) DeletePost(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("postid")

	if err := h.postService.DeletePost(c.Request().Context(), postID, claims.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		case errors.Is(err, services.ErrNotPostOwner):
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden. You are not authorized to delete this post.")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// LikePost records a like. A repeat like answers 200 without creating a
// second record.
func (h *PostHandler) LikePost(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("postid")

	like, created, err := h.postService.LikePost(c.Request().Context(), postID, claims.Username)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	if !created {
		return c.JSON(http.StatusOK, echo.Map{"message": "you can like only 1 time"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Post liked successfully.",
		"like":    like,
	})
}

// UnlikePost deletes the caller's like and returns the deleted record
func (h *PostHandler) UnlikePost(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("postid")

	deleted, err := h.postService.UnlikePost(c.Request().Context(), postID, claims.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Post not found.")
		case errors.Is(err, services.ErrNotLiked):
			return echo.NewHTTPError(http.StatusUnauthorized, "please like first")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "you sucessfully unlike",
		"deletedLike": deleted,
	})
}

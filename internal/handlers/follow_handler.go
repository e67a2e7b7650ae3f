package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anonto42/instapix/backend/internal/models"
	"github.com/anonto42/instapix/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow-relationship HTTP requests
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/follow/:username", h.FollowUser)
	g.POST("/users/unfollow/:username", h.UnfollowUser)
	g.POST("/follow-requests/:id", h.RespondToFollowRequest)
	g.GET("/follow-requests/pending", h.GetPendingFollowRequests)
}

// FollowUser sends a follow request to another user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	followeeUsername := c.Param("username")

	follow, err := h.followService.CreateFollowRequest(c.Request().Context(), claims.Username, followeeUsername)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot follow yourself")
		case errors.Is(err, services.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User you are trying to follow does not exist")
		case errors.Is(err, services.ErrAlreadyFollowing):
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("You are already following %s", followeeUsername))
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("follow request is sent to %s", followeeUsername),
		"follow":  follow,
	})
}

// UnfollowUser removes the follow edge if one exists. Unfollowing someone
// you never followed is still a success.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	followeeUsername := c.Param("username")

	removed, err := h.followService.Unfollow(c.Request().Context(), claims.Username, followeeUsername)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	if !removed {
		return c.JSON(http.StatusOK, echo.Map{
			"message": fmt.Sprintf("You are not following %s", followeeUsername),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("You have unfollowed %s", followeeUsername),
	})
}

// RespondToFollowRequest applies the followee's accept/reject decision.
// An out-of-set decision answers 200 with a hint rather than 4xx, matching
// the client contract.
func (h *FollowHandler) RespondToFollowRequest(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	followID := c.Param("id")

	var req models.RespondFollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	follow, err := h.followService.Respond(c.Request().Context(), followID, req.Response, claims.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDecision):
			return c.JSON(http.StatusOK, echo.Map{
				"message": "first choose 'accepted','rejected'",
				"status":  "failed",
			})
		case errors.Is(err, services.ErrFollowNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Follow request not found")
		case errors.Is(err, services.ErrNotResponder):
			return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to respond to this follow request")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
		}
	}

	message := "you rejected"
	if follow.Status == models.FollowAccepted {
		message = "you have new follower"
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": message})
}

// GetPendingFollowRequests lists the requests awaiting the caller's decision
func (h *FollowHandler) GetPendingFollowRequests(c echo.Context) error {
	claims := getUserClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	requests, err := h.followService.PendingRequests(c.Request().Context(), claims.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": requests})
}

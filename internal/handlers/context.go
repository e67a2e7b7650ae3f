package handlers

import (
	"github.com/anonto42/instapix/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserClaims pulls the verified session identity that JWTAuthMiddleware
// stored on the context. Nil means the route was mounted without the
// middleware.
func getUserClaims(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get("user").(*models.JwtCustomClaims)
	return claims
}

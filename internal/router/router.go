package router

import (
	"context"
	"log"
	"time"

	"github.com/anonto42/instapix/backend/internal/handlers"
	"github.com/anonto42/instapix/backend/internal/middleware"
	"github.com/anonto42/instapix/backend/internal/repositories"
	"github.com/anonto42/instapix/backend/internal/services"
	"github.com/anonto42/instapix/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, uploader storage.Uploader, jwtSecret string) {
	// Declare the unique indexes before serving traffic; they are the
	// authoritative guard for follow and like uniqueness.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	log.Println("MongoDB indexes ensured for all collections.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	likeRepo := repositories.NewMongoLikeRepository(db)
	followRepo := repositories.NewMongoFollowRepository(db)

	// --- Initialize Services ---
	followService := services.NewFollowService(followRepo, userRepo)
	postService := services.NewPostService(postRepo, likeRepo, userRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require a session token) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))
	log.Println("JWT authentication middleware applied to /api group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Post and like routes
	postHandler := handlers.NewPostHandler(postService, uploader)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	log.Println("All routes configured.")
}

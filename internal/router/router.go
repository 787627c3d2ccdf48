package router

import (
	"log"

	"blogly/internal/handlers"
	"blogly/internal/migrations"
	"blogly/internal/repositories"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes applies pending migrations, then wires repositories into
// handlers and registers all application routes
func SetupRoutes(e *echo.Echo, db *gorm.DB) error {
	if err := migrations.Run(db); err != nil {
		return err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	tagRepo := repositories.NewPostgresTagRepository(db)

	// Homepage feed
	homeHandler := handlers.NewHomeHandler(postRepo)
	homeHandler.RegisterHomeRoutes(e)

	// User routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(e)
	log.Println("User routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo, tagRepo)
	postHandler.RegisterPostRoutes(e)
	log.Println("Post routes configured.")

	// Tag routes
	tagHandler := handlers.NewTagHandler(tagRepo, postRepo)
	tagHandler.RegisterTagRoutes(e)
	log.Println("Tag routes configured.")

	log.Println("All routes configured.")
	return nil
}

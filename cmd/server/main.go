package main

import (
	"log"

	"blogly/internal/render"
	"blogly/internal/router"
	"blogly/pkg/config"
	"blogly/validators"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure the database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Page templates and form validation
	e.Renderer = render.New()
	e.Validator = validators.NewValidator()

	// Apply migrations, wire dependencies, register routes
	if err := router.SetupRoutes(e, db.Postgres); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

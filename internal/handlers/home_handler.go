package handlers

import (
	"net/http"

	"blogly/internal/repositories"

	"github.com/labstack/echo/v4"
)

// homeFeedSize is how many recent posts the homepage shows.
const homeFeedSize = 5

// HomeHandler renders the homepage feed
type HomeHandler struct {
	postRepository repositories.PostRepository
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(postRepo repositories.PostRepository) *HomeHandler {
	return &HomeHandler{postRepository: postRepo}
}

// RegisterHomeRoutes registers the homepage route
func (h *HomeHandler) RegisterHomeRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
}

// Home renders the most recent posts, newest first
func (h *HomeHandler) Home(c echo.Context) error {
	posts, err := h.postRepository.GetRecentPosts(homeFeedSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "home.html", echo.Map{"Posts": posts})
}

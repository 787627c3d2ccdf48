package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"blogly/internal/models"
	"blogly/internal/repositories"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	tagRepository  repositories.TagRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, tagRepo repositories.TagRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		tagRepository:  tagRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo) {
	e.GET("/users/:id/posts/new", h.NewPostForm)
	e.POST("/users/:id/posts/new", h.CreatePost)
	e.GET("/posts/:id", h.ShowPost)
	e.GET("/posts/:id/edit", h.EditPostForm)
	e.POST("/posts/:id/edit", h.UpdatePost)
	e.POST("/posts/:id/delete", h.DeletePost)
}

// NewPostForm renders the add-post form for a user, with every tag offered
// as an option
func (h *PostHandler) NewPostForm(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	tags, err := h.tagRepository.GetTags()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "posts_new.html", echo.Map{"User": user, "Tags": tags})
}

// CreatePost creates a post owned by the user, attaching the selected tags,
// and redirects to the user's detail page
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tags, err := h.selectedTags(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  user.ID,
		Tags:    tags,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", user.ID))
}

// ShowPost renders a post's detail page
func (h *PostHandler) ShowPost(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "posts_show.html", echo.Map{"Post": post})
}

// EditPostForm renders the edit form for a post, with every tag offered and
// the post's current tags pre-selected
func (h *PostHandler) EditPostForm(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	tags, err := h.tagRepository.GetTags()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "posts_edit.html", echo.Map{"Post": post, "Tags": tags})
}

// UpdatePost replaces a post's title, content and entire tag set, then
// redirects to the owning user's page
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tags, err := h.selectedTags(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post.Title = req.Title
	post.Content = req.Content
	if err := h.postRepository.UpdatePost(post, tags); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", post.UserID))
}

// DeletePost deletes a post, keeping its tags, and redirects to the owning
// user's page
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.postRepository.DeletePost(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", post.UserID))
}

// selectedTags resolves the "tags" form values to existing tags; unknown or
// unparseable ids are dropped.
func (h *PostHandler) selectedTags(c echo.Context) ([]models.Tag, error) {
	form, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	return h.tagRepository.GetTagsByIDs(parseIDList(form["tags"]))
}

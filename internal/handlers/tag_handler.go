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

// TagHandler handles HTTP requests related to tags
type TagHandler struct {
	tagRepository  repositories.TagRepository
	postRepository repositories.PostRepository
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagRepo repositories.TagRepository, postRepo repositories.PostRepository) *TagHandler {
	return &TagHandler{
		tagRepository:  tagRepo,
		postRepository: postRepo,
	}
}

// RegisterTagRoutes registers tag-related routes
func (h *TagHandler) RegisterTagRoutes(e *echo.Echo) {
	e.GET("/tags", h.ListTags)
	e.GET("/tags/new", h.NewTagForm)
	e.POST("/tags/new", h.CreateTag)
	e.GET("/tags/:id", h.ShowTag)
	e.GET("/tags/:id/edit", h.EditTagForm)
	e.POST("/tags/:id/edit", h.UpdateTag)
	e.POST("/tags/:id/delete", h.DeleteTag)
}

// ListTags renders the list of all tags
func (h *TagHandler) ListTags(c echo.Context) error {
	tags, err := h.tagRepository.GetTags()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "tags_index.html", echo.Map{"Tags": tags})
}

// NewTagForm renders the empty add-tag form
func (h *TagHandler) NewTagForm(c echo.Context) error {
	return c.Render(http.StatusOK, "tags_new.html", nil)
}

// CreateTag creates a tag and redirects to the tag list. A duplicate name
// is refused with a conflict, never a silent success.
func (h *TagHandler) CreateTag(c echo.Context) error {
	var req models.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag := &models.Tag{Name: req.Name}
	if err := h.tagRepository.CreateTag(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict,
				fmt.Sprintf("A tag named %q already exists", req.Name))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/tags")
}

// ShowTag renders a tag's detail page
func (h *TagHandler) ShowTag(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
	}
	tag, err := h.tagRepository.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "tags_show.html", echo.Map{"Tag": tag})
}

// EditTagForm renders the edit form for a tag, with every post offered and
// the tag's current posts pre-selected
func (h *TagHandler) EditTagForm(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
	}
	tag, err := h.tagRepository.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	posts, err := h.postRepository.GetPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "tags_edit.html", echo.Map{"Tag": tag, "Posts": posts})
}

// UpdateTag replaces a tag's name and entire post set, then redirects to
// the tag list
func (h *TagHandler) UpdateTag(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
	}
	tag, err := h.tagRepository.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.UpdateTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	posts, err := h.postRepository.GetPostsByIDs(parseIDList(form["posts"]))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	tag.Name = req.Name
	if err := h.tagRepository.UpdateTag(tag, posts); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict,
				fmt.Sprintf("A tag named %q already exists", req.Name))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/tags")
}

// DeleteTag deletes a tag, keeping its posts, and redirects to the tag list
func (h *TagHandler) DeleteTag(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
	}
	if err := h.tagRepository.DeleteTag(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/tags")
}

package handlers

import (
	"errors"
	"net/http"

	"blogly/internal/models"
	"blogly/internal/repositories"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(e *echo.Echo) {
	e.GET("/users", h.ListUsers)
	e.GET("/users/new", h.NewUserForm)
	e.POST("/users/new", h.CreateUser)
	e.GET("/users/:id", h.ShowUser)
	e.GET("/users/:id/edit", h.EditUserForm)
	e.POST("/users/:id/edit", h.UpdateUser)
	e.POST("/users/:id/delete", h.DeleteUser)
}

// ListUsers renders the list of all users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "users_index.html", echo.Map{"Users": users})
}

// NewUserForm renders the empty add-user form
func (h *UserHandler) NewUserForm(c echo.Context) error {
	return c.Render(http.StatusOK, "users_new.html", nil)
}

// CreateUser creates a user from form fields and redirects to the user list
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  models.ImageOrDefault(req.ImageURL),
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/users")
}

// ShowUser renders a user's detail page
func (h *UserHandler) ShowUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "users_show.html", echo.Map{"User": user})
}

// EditUserForm renders the pre-filled edit form for a user
func (h *UserHandler) EditUserForm(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "users_edit.html", echo.Map{"User": user})
}

// UpdateUser replaces a user's editable fields and redirects to the user list
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.ImageURL = models.ImageOrDefault(req.ImageURL)

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/users")
}

// DeleteUser deletes a user, cascading to its posts, and redirects to the
// user list
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err := h.userRepository.DeleteUser(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/users")
}

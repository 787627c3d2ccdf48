package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogly/internal/models"
	"blogly/internal/render"
	"blogly/internal/router"
	"blogly/validators"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires the full application against an in-memory SQLite
// database: migrations, renderer, validator and every route.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or the in-memory database vanishes on pool churn
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	e := echo.New()
	e.Renderer = render.New()
	e.Validator = validators.NewValidator()
	require.NoError(t, router.SetupRoutes(e, db))
	return e, db
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createUser(t *testing.T, db *gorm.DB, first, last string) *models.User {
	t.Helper()
	user := &models.User{FirstName: first, LastName: last, ImageURL: models.DefaultImageURL}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, user *models.User, title string, tags ...models.Tag) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "content of " + title, UserID: user.ID, Tags: tags}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

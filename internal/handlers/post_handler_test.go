package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"blogly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func postTagIDs(t *testing.T, db *gorm.DB, postID uint) []uint {
	t.Helper()
	var post models.Post
	require.NoError(t, db.Preload("Tags").First(&post, postID).Error)
	ids := make([]uint, 0, len(post.Tags))
	for _, tag := range post.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func TestCreatePostWithTags(t *testing.T) {
	e, db := newTestServer(t)
	user := createUser(t, db, "Jane", "Doe")
	t1 := createTag(t, db, "go")
	t2 := createTag(t, db, "web")

	rec := postForm(e, fmt.Sprintf("/users/%d/posts/new", user.ID), url.Values{
		"title":   {"Hello"},
		"content": {"First post"},
		"tags":    {strconv.Itoa(int(t1.ID)), strconv.Itoa(int(t2.ID))},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), rec.Header().Get("Location"))

	var post models.Post
	require.NoError(t, db.Where("title = ?", "Hello").First(&post).Error)
	assert.Equal(t, user.ID, post.UserID)
	assert.ElementsMatch(t, []uint{t1.ID, t2.ID}, postTagIDs(t, db, post.ID))
}

func TestCreatePostUnknownTagIDsDropped(t *testing.T) {
	e, db := newTestServer(t)
	user := createUser(t, db, "Jane", "Doe")
	t1 := createTag(t, db, "go")

	rec := postForm(e, fmt.Sprintf("/users/%d/posts/new", user.ID), url.Values{
		"title":   {"Hello"},
		"content": {"First post"},
		"tags":    {strconv.Itoa(int(t1.ID)), "999999", "not-a-number"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)

	var post models.Post
	require.NoError(t, db.Where("title = ?", "Hello").First(&post).Error)
	assert.ElementsMatch(t, []uint{t1.ID}, postTagIDs(t, db, post.ID))
}

func TestCreatePostForMissingUser(t *testing.T) {
	e, db := newTestServer(t)

	rec := postForm(e, "/users/999999/posts/new", url.Values{
		"title":   {"Hello"},
		"content": {"First post"},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestShowPost(t *testing.T) {
	e, db := newTestServer(t)
	user := createUser(t, db, "Jane", "Doe")
	tag := createTag(t, db, "go")
	post := createPost(t, db, user, "Visible", *tag)

	rec := get(e, fmt.Sprintf("/posts/%d", post.ID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Visible")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.Contains(t, rec.Body.String(), "go")
}

func TestShowPostNotFound(t *testing.T) {
	e, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(e, "/posts/999999").Code)
}

func TestUpdatePostReplacesTagSet(t *testing.T) {
	e, db := newTestServer(t)
	user := createUser(t, db, "Jane", "Doe")
	t1 := createTag(t, db, "one")
	t2 := createTag(t, db, "two")
	post := createPost(t, db, user, "Tagged", *t1, *t2)

	rec := postForm(e, fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title":   {"Retagged"},
		"content": {"edited"},
		"tags":    {strconv.Itoa(int(t2.ID))},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), rec.Header().Get("Location"))

	var updated models.Post
	require.NoError(t, db.First(&updated, post.ID).Error)
	assert.Equal(t, "Retagged", updated.Title)
	assert.ElementsMatch(t, []uint{t2.ID}, postTagIDs(t, db, post.ID))
}

func TestDeletePost(t *testing.T) {
	e, db := newTestServer(t)
	user := createUser(t, db, "Jane", "Doe")
	tag := createTag(t, db, "keep")
	post := createPost(t, db, user, "Doomed", *tag)

	rec := postForm(e, fmt.Sprintf("/posts/%d/delete", post.ID), nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), rec.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, get(e, fmt.Sprintf("/posts/%d", post.ID)).Code)

	// the tag is untouched
	var tags int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.EqualValues(t, 1, tags)
}

func TestDeletePostNotFoundMutatesNothing(t *testing.T) {
	e, db := newTestServer(t)
	user := createUser(t, db, "Jane", "Doe")
	createPost(t, db, user, "Survivor")

	rec := postForm(e, "/posts/999999/delete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestHomeShowsFiveNewestPosts(t *testing.T) {
	e, db := newTestServer(t)
	user := createUser(t, db, "Jane", "Doe")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 6; i++ {
		post := &models.Post{
			Title:     fmt.Sprintf("post-%d", i),
			Content:   "content",
			UserID:    user.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}

	rec := get(e, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for i := 2; i <= 6; i++ {
		assert.Contains(t, body, fmt.Sprintf("post-%d", i))
	}
	assert.NotContains(t, body, "post-1<")
}

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/api"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	t.Run("valid registration", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/users", "", map[string]string{
			"username": "mluukkai",
			"name":     "Matti Luukkainen",
			"password": "salainen",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "mluukkai", resp.Username)
		assert.Equal(t, "Matti Luukkainen", resp.Name)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Empty(t, resp.Blogs)

		// Neither the password nor its hash appears anywhere in the body.
		assert.NotContains(t, rec.Body.String(), "salainen")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/users", "", map[string]string{
			"username": "mluukkai",
			"password": "sa",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "password must be at least 3 characters long")
	})

	t.Run("short username", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/users", "", map[string]string{
			"username": "ml",
			"password": "salainen",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username must be at least 3 characters long")
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		ts.registerUser(t, "root", "salainen")

		rec := ts.do(t, http.MethodPost, "/api/users", "", map[string]string{
			"username": "root",
			"password": "salainen",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username must be unique")
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	owner, token := ts.registerUser(t, "mluukkai", "salainen")
	ts.registerUser(t, "hellas", "salainen")

	created := ts.do(t, http.MethodPost, "/api/blogs", token, map[string]interface{}{
		"title":  "Owned",
		"author": "Matti Luukkainen",
		"url":    "https://example.com",
		"likes":  3,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	rec := ts.do(t, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []api.UserResponse
	decodeBody(t, rec, &users)
	require.Len(t, users, 2)

	byUsername := make(map[string]api.UserResponse)
	for _, u := range users {
		byUsername[u.Username] = u
	}

	require.Len(t, byUsername["mluukkai"].Blogs, 1)
	blog := byUsername["mluukkai"].Blogs[0]
	assert.Equal(t, "Owned", blog.Title)
	assert.Equal(t, "Matti Luukkainen", blog.Author)
	assert.Equal(t, "https://example.com", blog.URL)
	assert.Equal(t, 3, blog.Likes)

	assert.Empty(t, byUsername["hellas"].Blogs)
	assert.Equal(t, owner.ID, byUsername["mluukkai"].ID)

	// No password material in the listing.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("cascade removes owned blogs", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		user, token := ts.registerUser(t, "mluukkai", "salainen")

		created := ts.do(t, http.MethodPost, "/api/blogs", token, map[string]interface{}{
			"title": "Doomed",
			"url":   "https://example.com",
		})
		require.Equal(t, http.StatusCreated, created.Code)

		rec := ts.do(t, http.MethodDelete, "/api/users/"+user.ID.String(), "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		blogs, err := ts.blogs.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, blogs)

		// The deleted user's token stops working.
		again := ts.do(t, http.MethodPost, "/api/blogs", token, map[string]interface{}{
			"title": "Ghost post",
			"url":   "https://example.com",
		})
		assert.Equal(t, http.StatusUnauthorized, again.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodDelete, "/api/users/"+uuid.NewString(), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodDelete, "/api/users/not-a-uuid", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}


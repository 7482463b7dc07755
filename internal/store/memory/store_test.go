package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/store"
)

func mustUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, "", "$2a$10$hash")
	require.NoError(t, err)
	return user
}

func mustBlog(t *testing.T, ownerID uuid.UUID, title string) *domain.Blog {
	t.Helper()
	blog, err := domain.NewBlog(ownerID, title, "", "https://example.com", 0)
	require.NoError(t, err)
	return blog
}

func TestUserStoreUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewUserStore()

	require.NoError(t, s.Create(ctx, mustUser(t, "root")))

	err := s.Create(ctx, mustUser(t, "root"))
	assert.ErrorIs(t, err, store.ErrUsernameExists)
	assert.True(t, store.IsDuplicateError(err))
}

func TestUserStoreSentinels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewUserStore()

	_, err := s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))

	_, err = s.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	assert.ErrorIs(t, s.Delete(ctx, uuid.New()), store.ErrUserNotFound)
}

func TestUserStoreReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewUserStore()

	original := mustUser(t, "mluukkai")
	require.NoError(t, s.Create(ctx, original))

	loaded, err := s.GetByID(ctx, original.ID)
	require.NoError(t, err)
	loaded.Username = "mutated"

	again, err := s.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "mluukkai", again.Username)
}

func TestBlogStoreInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewBlogStore()
	ownerID := uuid.New()

	first := mustBlog(t, ownerID, "first")
	second := mustBlog(t, ownerID, "second")
	third := mustBlog(t, uuid.New(), "third")

	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))
	require.NoError(t, s.Create(ctx, third))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, third.ID, all[2].ID)

	owned, err := s.ListByUser(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, first.ID, owned[0].ID)
	assert.Equal(t, second.ID, owned[1].ID)
}

func TestBlogStoreDeleteByUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewBlogStore()
	ownerID := uuid.New()

	require.NoError(t, s.Create(ctx, mustBlog(t, ownerID, "mine")))
	require.NoError(t, s.Create(ctx, mustBlog(t, ownerID, "also mine")))
	kept := mustBlog(t, uuid.New(), "someone else's")
	require.NoError(t, s.Create(ctx, kept))

	require.NoError(t, s.DeleteByUser(ctx, ownerID))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)

	// Deleting for a user with no blogs is a no-op, not an error.
	assert.NoError(t, s.DeleteByUser(ctx, uuid.New()))
}

func TestBlogStoreSentinels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewBlogStore()

	_, err := s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrBlogNotFound)

	assert.ErrorIs(t, s.Delete(ctx, uuid.New()), store.ErrBlogNotFound)
	assert.ErrorIs(t, s.Update(ctx, mustBlog(t, uuid.New(), "ghost")), store.ErrBlogNotFound)
}

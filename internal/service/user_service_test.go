package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store"
	"github.com/phrazzld/bloglist-api/internal/store/memory"
)

// newUserService wires a UserService against in-memory stores. The nil db is
// fine: without a database handle the service runs its atomic sections
// directly against the fakes.
func newUserService(t *testing.T) (*service.UserService, *memory.UserStore, *memory.BlogStore) {
	t.Helper()

	users := memory.NewUserStore()
	blogs := memory.NewBlogStore()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	svc, err := service.NewUserService(nil, users, blogs, hasher, nil)
	require.NoError(t, err)
	return svc, users, blogs
}

func TestUserServiceCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates and hashes", func(t *testing.T) {
		t.Parallel()
		svc, users, _ := newUserService(t)

		user, err := svc.Create(ctx, "mluukkai", "Matti Luukkainen", "salainen")
		require.NoError(t, err)
		assert.Equal(t, "mluukkai", user.Username)
		assert.NotEqual(t, "salainen", user.HashedPassword)

		stored, err := users.GetByUsername(ctx, "mluukkai")
		require.NoError(t, err)
		assert.NoError(t,
			bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("salainen")))
	})

	t.Run("password too short", func(t *testing.T) {
		t.Parallel()
		svc, users, _ := newUserService(t)

		_, err := svc.Create(ctx, "mluukkai", "Matti Luukkainen", "sa")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

		// Fail-fast: nothing was persisted.
		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("username too short", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newUserService(t)

		_, err := svc.Create(ctx, "ml", "Matti Luukkainen", "salainen")
		assert.ErrorIs(t, err, domain.ErrUsernameTooShort)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newUserService(t)

		_, err := svc.Create(ctx, "root", "Superuser", "salainen")
		require.NoError(t, err)

		_, err = svc.Create(ctx, "root", "Somebody Else", "salainen")
		assert.ErrorIs(t, err, domain.ErrUsernameNotUnique)
	})
}

func TestUserServiceList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, blogs := newUserService(t)

	alice, err := svc.Create(ctx, "alice", "Alice", "salainen")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", "Bob", "salainen")
	require.NoError(t, err)

	first, err := domain.NewBlog(alice.ID, "First", "Alice", "https://a.example/1", 3)
	require.NoError(t, err)
	require.NoError(t, blogs.Create(ctx, first))
	second, err := domain.NewBlog(alice.ID, "Second", "Alice", "https://a.example/2", 0)
	require.NoError(t, err)
	require.NoError(t, blogs.Create(ctx, second))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byUsername := make(map[string]*service.UserWithBlogs)
	for _, e := range entries {
		byUsername[e.User.Username] = e
	}

	require.Len(t, byUsername["alice"].Blogs, 2)
	assert.Equal(t, first.ID, byUsername["alice"].Blogs[0].ID)
	assert.Equal(t, second.ID, byUsername["alice"].Blogs[1].ID)

	// A user without blogs gets an empty slice, not nil.
	require.NotNil(t, byUsername["bob"].Blogs)
	assert.Empty(t, byUsername["bob"].Blogs)
}

func TestUserServiceDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("cascades to owned blogs", func(t *testing.T) {
		t.Parallel()
		svc, users, blogs := newUserService(t)

		user, err := svc.Create(ctx, "mluukkai", "Matti Luukkainen", "salainen")
		require.NoError(t, err)

		blog, err := domain.NewBlog(user.ID, "Doomed", "", "https://example.com", 0)
		require.NoError(t, err)
		require.NoError(t, blogs.Create(ctx, blog))

		require.NoError(t, svc.Delete(ctx, user.ID))

		_, err = users.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		remaining, err := blogs.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newUserService(t)

		err := svc.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("leaves other users' blogs alone", func(t *testing.T) {
		t.Parallel()
		svc, _, blogs := newUserService(t)

		victim, err := svc.Create(ctx, "victim", "", "salainen")
		require.NoError(t, err)
		survivor, err := svc.Create(ctx, "survivor", "", "salainen")
		require.NoError(t, err)

		kept, err := domain.NewBlog(survivor.ID, "Kept", "", "https://example.com", 0)
		require.NoError(t, err)
		require.NoError(t, blogs.Create(ctx, kept))

		require.NoError(t, svc.Delete(ctx, victim.ID))

		remaining, err := blogs.List(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, kept.ID, remaining[0].ID)
	})
}

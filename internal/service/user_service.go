package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/platform/logger"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// UserWithBlogs is a user directory entry: the user plus their owned blogs
// in creation order.
type UserWithBlogs struct {
	User  *domain.User
	Blogs []*domain.Blog
}

// UserService implements the user directory: registration with fail-fast
// validation, listing with owned-blog expansion, and transactional cascade
// deletion.
type UserService struct {
	db        *sql.DB
	userStore store.UserStore
	blogStore store.BlogStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	blogStore store.BlogStore,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) (*UserService, error) {
	if userStore == nil || blogStore == nil || hasher == nil {
		return nil, errors.New("user service requires user store, blog store, and hasher")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserService{
		db:        db,
		userStore: userStore,
		blogStore: blogStore,
		hasher:    hasher,
		logger:    log.With(slog.String("component", "user_service")),
	}, nil
}

// Create registers a new user. All validation runs before the password is
// hashed or anything is persisted: password length, username length, then
// username uniqueness.
func (s *UserService) Create(
	ctx context.Context,
	username, name, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if len(username) < domain.MinUsernameLength {
		return nil, domain.ErrUsernameTooShort
	}

	_, err := s.userStore.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, domain.ErrUsernameNotUnique
	case !errors.Is(err, store.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(username, name, hash)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		// A concurrent registration can still win the unique index race.
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, domain.ErrUsernameNotUnique
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return user, nil
}

// List returns every user with their owned blogs expanded, in user creation
// order. Blogs are fetched once and grouped to avoid per-user queries.
func (s *UserService) List(ctx context.Context) ([]*UserWithBlogs, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	blogs, err := s.blogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	byOwner := make(map[uuid.UUID][]*domain.Blog)
	for _, b := range blogs {
		byOwner[b.UserID] = append(byOwner[b.UserID], b)
	}

	result := make([]*UserWithBlogs, 0, len(users))
	for _, u := range users {
		owned := byOwner[u.ID]
		if owned == nil {
			owned = []*domain.Blog{}
		}
		result = append(result, &UserWithBlogs{User: u, Blogs: owned})
	}
	return result, nil
}

// GetByID returns a single user by id.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// Delete removes a user and cascades to every blog they own. The cascade
// and the user deletion commit or roll back together.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.runAtomic(ctx, func(ctx context.Context, users store.UserStore, blogs store.BlogStore) error {
		if err := blogs.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("failed to delete user's blogs: %w", err)
		}
		return users.Delete(ctx, id)
	})
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}

// runAtomic executes fn against transaction-bound stores. Without a
// database handle (unit tests against in-memory stores) fn runs directly;
// the fakes are already atomic under their own locks.
func (s *UserService) runAtomic(
	ctx context.Context,
	fn func(ctx context.Context, users store.UserStore, blogs store.BlogStore) error,
) error {
	if s.db == nil {
		return fn(ctx, s.userStore, s.blogStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.userStore.WithTx(tx), s.blogStore.WithTx(tx))
	})
}

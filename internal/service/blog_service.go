package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/platform/logger"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// BlogWithUser is a blog registry entry: the blog plus its owner when the
// owner is still resolvable. Owner may be nil after an update reassigned
// the blog to an id that no longer exists.
type BlogWithUser struct {
	Blog  *domain.Blog
	Owner *domain.User
}

// CreateBlogInput carries the validated fields for a blog creation.
// Likes is optional and defaults to zero.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// UpdateBlogInput carries a partial update: only non-nil fields are applied.
// Title and url are not re-validated on update, and no ownership check is
// performed; both asymmetries with Create are long-standing behavior of the
// platform and preserved deliberately.
type UpdateBlogInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
	UserID *uuid.UUID
}

// BlogStats is an aggregate view over the whole blog list.
type BlogStats struct {
	Count      int                `json:"count"`
	TotalLikes int                `json:"totalLikes"`
	Favorite   *domain.Blog       `json:"favorite,omitempty"`
	MostBlogs  domain.AuthorCount `json:"mostBlogs"`
	MostLikes  domain.AuthorLikes `json:"mostLikes"`
}

// BlogService implements the blog registry: public reads, authenticated
// creation, owner-gated deletion, and unchecked partial updates.
type BlogService struct {
	blogStore store.BlogStore
	userStore store.UserStore
	logger    *slog.Logger
}

// NewBlogService creates a BlogService with the given dependencies.
func NewBlogService(
	blogStore store.BlogStore,
	userStore store.UserStore,
	log *slog.Logger,
) (*BlogService, error) {
	if blogStore == nil || userStore == nil {
		return nil, errors.New("blog service requires blog store and user store")
	}
	if log == nil {
		log = slog.Default()
	}

	return &BlogService{
		blogStore: blogStore,
		userStore: userStore,
		logger:    log.With(slog.String("component", "blog_service")),
	}, nil
}

// List returns all blogs with their owners expanded, in creation order.
func (s *BlogService) List(ctx context.Context) ([]*BlogWithUser, error) {
	blogs, err := s.blogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return s.expandOwners(ctx, blogs)
}

// Create persists a new blog owned by ownerID. Title and url must be
// non-blank after trimming; likes defaults to zero when absent. The owner
// must exist — creation is only reachable through an authenticated identity,
// but the user may have been deleted since the token was issued.
func (s *BlogService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input CreateBlogInput,
) (*BlogWithUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	likes := 0
	if input.Likes != nil {
		likes = *input.Likes
	}

	owner, err := s.userStore.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	blog, err := domain.NewBlog(ownerID, input.Title, input.Author, input.URL, likes)
	if err != nil {
		return nil, err
	}

	if err := s.blogStore.Create(ctx, blog); err != nil {
		log.Error("failed to create blog",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}

	log.Info("blog created",
		slog.String("blog_id", blog.ID.String()),
		slog.String("user_id", ownerID.String()))
	return &BlogWithUser{Blog: blog, Owner: owner}, nil
}

// GetByID returns a single blog with its owner expanded when resolvable.
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*BlogWithUser, error) {
	blog, err := s.blogStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.userStore.GetByID(ctx, blog.UserID)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}
	return &BlogWithUser{Blog: blog, Owner: owner}, nil
}

// Update applies the non-nil fields of input to an existing blog and
// returns the result. No validation or ownership check happens here; an
// update may blank a title or hand the blog to another user.
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *BlogService) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateBlogInput,
) (*BlogWithUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	blog, err := s.blogStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.URL != nil {
		blog.URL = *input.URL
	}
	if input.Likes != nil {
		blog.Likes = *input.Likes
	}
	if input.UserID != nil {
		blog.UserID = *input.UserID
	}
	blog.UpdatedAt = time.Now().UTC()

	if err := s.blogStore.Update(ctx, blog); err != nil {
		log.Error("failed to update blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, err
	}

	owner, err := s.userStore.GetByID(ctx, blog.UserID)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}
	return &BlogWithUser{Blog: blog, Owner: owner}, nil
}

// Delete removes a blog on behalf of callerID. Only the owner may delete;
// anyone else gets ErrBlogNotOwned regardless of what else they know about
// the blog.
func (s *BlogService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	blog, err := s.blogStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.UserID != callerID {
		log.Warn("blog delete denied: caller is not the owner",
			slog.String("blog_id", id.String()),
			slog.String("caller_id", callerID.String()))
		return ErrBlogNotOwned
	}

	if err := s.blogStore.Delete(ctx, id); err != nil {
		log.Error("failed to delete blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return err
	}

	log.Info("blog deleted",
		slog.String("blog_id", id.String()),
		slog.String("user_id", callerID.String()))
	return nil
}

// Stats computes the aggregate view over all blogs.
func (s *BlogService) Stats(ctx context.Context) (*BlogStats, error) {
	blogs, err := s.blogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return &BlogStats{
		Count:      len(blogs),
		TotalLikes: domain.TotalLikes(blogs),
		Favorite:   domain.FavoriteBlog(blogs),
		MostBlogs:  domain.MostBlogs(blogs),
		MostLikes:  domain.MostLikes(blogs),
	}, nil
}

// expandOwners resolves the owner of each blog with a single user query.
func (s *BlogService) expandOwners(
	ctx context.Context,
	blogs []*domain.Blog,
) ([]*BlogWithUser, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := make([]*BlogWithUser, 0, len(blogs))
	for _, b := range blogs {
		result = append(result, &BlogWithUser{Blog: b, Owner: byID[b.UserID]})
	}
	return result, nil
}

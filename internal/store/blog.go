package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/bloglist-api/internal/domain"
)

// BlogStore defines the interface for blog data persistence.
type BlogStore interface {
	// Create saves a new blog to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Blog if data is invalid.
	Create(ctx context.Context, blog *domain.Blog) error

	// GetByID retrieves a blog by its unique ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)

	// List retrieves all blogs ordered by creation time.
	List(ctx context.Context) ([]*domain.Blog, error)

	// ListByUser retrieves the blogs owned by the given user in creation
	// order. The result is the authoritative expansion of the user's owned
	// blog list.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Blog, error)

	// Update overwrites an existing blog. The caller provides the complete
	// blog; partial-update semantics are the service's concern.
	// Returns ErrBlogNotFound if the blog does not exist.
	Update(ctx context.Context, blog *domain.Blog) error

	// Delete removes a blog from the store by its ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every blog owned by the given user. Used by the
	// user directory's cascade delete. Deleting zero blogs is not an error.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new BlogStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) BlogStore
}

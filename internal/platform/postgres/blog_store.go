package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/platform/logger"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// PostgresBlogStore implements the store.BlogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBlogStore creates a new PostgreSQL implementation of the
// BlogStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresBlogStore(db store.DBTX, log *slog.Logger) *PostgresBlogStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresBlogStore{
		db:     db,
		logger: log.With(slog.String("component", "blog_store")),
	}
}

var _ store.BlogStore = (*PostgresBlogStore)(nil)

const blogColumns = `id, title, author, url, likes, user_id, created_at, updated_at`

// Create implements store.BlogStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist
// (foreign key violation).
func (s *PostgresBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during create",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return err
	}

	query := `
		INSERT INTO blogs (id, title, author, url, likes, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during blog creation",
				slog.String("blog_id", blog.ID.String()),
				slog.String("user_id", blog.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, blog.UserID)
		}
		log.Error("failed to create blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return store.NewStoreError("blog", "create", "insert failed", err)
	}

	log.Info("blog created successfully",
		slog.String("blog_id", blog.ID.String()),
		slog.String("user_id", blog.UserID.String()))
	return nil
}

// GetByID implements store.BlogStore.GetByID.
func (s *PostgresBlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	var blog domain.Blog
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&blog.UserID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blog not found", slog.String("blog_id", id.String()))
			return nil, store.ErrBlogNotFound
		}
		log.Error("failed to get blog by ID",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, store.NewStoreError("blog", "get", "query failed", err)
	}

	return &blog, nil
}

// List implements store.BlogStore.List.
func (s *PostgresBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at, id`
	return s.queryBlogs(ctx, query)
}

// ListByUser implements store.BlogStore.ListByUser. The creation-order sort
// makes the result the user's owned-blog list.
func (s *PostgresBlogStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE user_id = $1 ORDER BY created_at, id`
	return s.queryBlogs(ctx, query, userID)
}

// Update implements store.BlogStore.Update.
func (s *PostgresBlogStore) Update(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4, user_id = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
		blog.UpdatedAt,
		blog.ID,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during blog update",
				slog.String("blog_id", blog.ID.String()),
				slog.String("user_id", blog.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, blog.UserID)
		}
		log.Error("failed to update blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return store.NewStoreError("blog", "update", "update failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return store.NewStoreError("blog", "update", "rows affected unavailable", err)
	}

	if rowsAffected == 0 {
		log.Debug("blog not found for update",
			slog.String("blog_id", blog.ID.String()))
		return store.ErrBlogNotFound
	}

	log.Info("blog updated successfully", slog.String("blog_id", blog.ID.String()))
	return nil
}

// Delete implements store.BlogStore.Delete.
func (s *PostgresBlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return store.NewStoreError("blog", "delete", "delete failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return store.NewStoreError("blog", "delete", "rows affected unavailable", err)
	}

	if rowsAffected == 0 {
		log.Debug("blog not found for delete", slog.String("blog_id", id.String()))
		return store.ErrBlogNotFound
	}

	log.Info("blog deleted successfully", slog.String("blog_id", id.String()))
	return nil
}

// DeleteByUser implements store.BlogStore.DeleteByUser.
func (s *PostgresBlogStore) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete user's blogs",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return store.NewStoreError("blog", "delete", "delete by user failed", err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil {
		log.Debug("deleted user's blogs",
			slog.String("user_id", userID.String()),
			slog.Int64("count", rowsAffected))
	}
	return nil
}

// WithTx implements store.BlogStore.WithTx.
func (s *PostgresBlogStore) WithTx(tx *sql.Tx) store.BlogStore {
	return &PostgresBlogStore{
		db:     tx,
		logger: s.logger,
	}
}

// queryBlogs runs a multi-row blog query and scans the results.
func (s *PostgresBlogStore) queryBlogs(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query blogs", slog.String("error", err.Error()))
		return nil, store.NewStoreError("blog", "list", "query failed", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	blogs := []*domain.Blog{}
	for rows.Next() {
		var blog domain.Blog
		err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Author,
			&blog.URL,
			&blog.Likes,
			&blog.UserID,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan blog row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("blog", "list", "row scan failed", err)
		}
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("blog", "list", "row iteration failed", err)
	}

	return blogs, nil
}

package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// BlogStore is an in-memory store.BlogStore.
type BlogStore struct {
	mu    sync.RWMutex
	blogs map[uuid.UUID]*domain.Blog
	seq   int64
	order map[uuid.UUID]int64 // insertion order; CreatedAt alone is too coarse in tests
}

// NewBlogStore creates an empty in-memory blog store.
func NewBlogStore() *BlogStore {
	return &BlogStore{
		blogs: make(map[uuid.UUID]*domain.Blog),
		order: make(map[uuid.UUID]int64),
	}
}

var _ store.BlogStore = (*BlogStore)(nil)

// Create implements store.BlogStore.Create.
func (s *BlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *blog
	s.blogs[blog.ID] = &copied
	s.seq++
	s.order[blog.ID] = s.seq
	return nil
}

// GetByID implements store.BlogStore.GetByID.
func (s *BlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blog, ok := s.blogs[id]
	if !ok {
		return nil, store.ErrBlogNotFound
	}
	copied := *blog
	return &copied, nil
}

// List implements store.BlogStore.List.
func (s *BlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(*domain.Blog) bool { return true }), nil
}

// ListByUser implements store.BlogStore.ListByUser.
func (s *BlogStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(b *domain.Blog) bool { return b.UserID == userID }), nil
}

// Update implements store.BlogStore.Update.
func (s *BlogStore) Update(ctx context.Context, blog *domain.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[blog.ID]; !ok {
		return store.ErrBlogNotFound
	}
	copied := *blog
	s.blogs[blog.ID] = &copied
	return nil
}

// Delete implements store.BlogStore.Delete.
func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return store.ErrBlogNotFound
	}
	delete(s.blogs, id)
	delete(s.order, id)
	return nil
}

// DeleteByUser implements store.BlogStore.DeleteByUser.
func (s *BlogStore) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, blog := range s.blogs {
		if blog.UserID == userID {
			delete(s.blogs, id)
			delete(s.order, id)
		}
	}
	return nil
}

// WithTx implements store.BlogStore.WithTx. The in-memory store has no
// transactions; it returns itself.
func (s *BlogStore) WithTx(tx *sql.Tx) store.BlogStore {
	return s
}

// collect returns copies of the blogs matching keep, in insertion order.
// Callers must hold at least the read lock.
func (s *BlogStore) collect(keep func(*domain.Blog) bool) []*domain.Blog {
	blogs := make([]*domain.Blog, 0, len(s.blogs))
	for _, blog := range s.blogs {
		if keep(blog) {
			copied := *blog
			blogs = append(blogs, &copied)
		}
	}
	sort.Slice(blogs, func(i, j int) bool {
		return s.order[blogs[i].ID] < s.order[blogs[j].ID]
	})
	return blogs
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Blog represents a single blog post owned by a user. Author is free-text
// attribution and is distinct from the owning user.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NewBlog creates a Blog owned by userID with a fresh ID and timestamps.
// Returns a validation error if title or url is blank after trimming or
// likes is negative.
func NewBlog(userID uuid.UUID, title, author, url string, likes int) (*Blog, error) {
	now := time.Now().UTC()
	blog := &Blog{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		URL:       url,
		Likes:     likes,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks that the Blog holds persistable data. Title and url must
// be non-blank after trimming; likes must be non-negative. Update payloads
// deliberately bypass this check (see BlogService.Update).
func (b *Blog) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBlogID
	}

	if strings.TrimSpace(b.Title) == "" {
		return ErrTitleMissing
	}

	if strings.TrimSpace(b.URL) == "" {
		return ErrURLMissing
	}

	if b.Likes < 0 {
		return ErrNegativeLikes
	}

	if b.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	return nil
}

package api

import (
	"github.com/google/uuid"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateUserRequest defines the payload for the user registration endpoint.
// Length and uniqueness rules live in the service layer so that the error
// messages stay exact; here we only pin the shape.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateBlogRequest defines the payload for blog creation.
// Likes is a pointer so an absent field can default to zero.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogRequest defines the payload for a partial blog update.
// Only fields present in the JSON body are applied.
type UpdateBlogRequest struct {
	Title  *string    `json:"title"`
	Author *string    `json:"author"`
	URL    *string    `json:"url"`
	Likes  *int       `json:"likes"`
	UserID *uuid.UUID `json:"user"`
}

// BlogOwner is the owner projection embedded in blog responses.
type BlogOwner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
}

// BlogResponse is a blog with its owner expanded. User is null when the
// owner can no longer be resolved.
type BlogResponse struct {
	ID     uuid.UUID  `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	URL    string     `json:"url"`
	Likes  int        `json:"likes"`
	User   *BlogOwner `json:"user"`
}

// OwnedBlog is the blog projection embedded in user responses.
type OwnedBlog struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	URL    string    `json:"url"`
	Likes  int       `json:"likes"`
}

// UserResponse is a user with their owned blogs projected. The password
// hash never appears here.
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Blogs    []OwnedBlog `json:"blogs"`
}

// newBlogResponse maps a service blog entry onto the wire shape.
func newBlogResponse(entry *service.BlogWithUser) BlogResponse {
	resp := BlogResponse{
		ID:     entry.Blog.ID,
		Title:  entry.Blog.Title,
		Author: entry.Blog.Author,
		URL:    entry.Blog.URL,
		Likes:  entry.Blog.Likes,
	}
	if entry.Owner != nil {
		resp.User = &BlogOwner{
			ID:       entry.Owner.ID,
			Username: entry.Owner.Username,
			Name:     entry.Owner.Name,
		}
	}
	return resp
}

// newUserResponse maps a user and their owned blogs onto the wire shape.
func newUserResponse(user *domain.User, blogs []*domain.Blog) UserResponse {
	owned := make([]OwnedBlog, 0, len(blogs))
	for _, b := range blogs {
		owned = append(owned, OwnedBlog{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
			Likes:  b.Likes,
		})
	}
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    owned,
	}
}

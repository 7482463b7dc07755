package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bloglist-api/internal/api/middleware"
	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/service"
)

// BlogHandler handles blog registry API requests.
type BlogHandler struct {
	blogService *service.BlogService
	logger      *slog.Logger
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(blogService *service.BlogService, log *slog.Logger) *BlogHandler {
	if log == nil {
		log = slog.Default()
	}
	return &BlogHandler{
		blogService: blogService,
		logger:      log.With(slog.String("component", "blog_handler")),
	}
}

// ListBlogs handles GET /api/blogs.
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.blogService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	blogs := make([]BlogResponse, 0, len(entries))
	for _, entry := range entries {
		blogs = append(blogs, newBlogResponse(entry))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, blogs)
}

// CreateBlog handles POST /api/blogs. The authenticated user becomes the
// owner of the new blog.
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	var req CreateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	entry, err := h.blogService.Create(r.Context(), userID, service.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newBlogResponse(entry))
}

// GetBlog handles GET /api/blogs/{id}.
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "blog not found")
		return
	}

	entry, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBlogResponse(entry))
}

// UpdateBlog handles PUT /api/blogs/{id}. Only fields present in the body
// are applied; the route requires no authentication.
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "blog not found")
		return
	}

	var req UpdateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	entry, err := h.blogService.Update(r.Context(), id, service.UpdateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: req.UserID,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBlogResponse(entry))
}

// DeleteBlog handles DELETE /api/blogs/{id}. Only the owner may delete.
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "blog not found")
		return
	}

	if err := h.blogService.Delete(r.Context(), id, userID); err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// BlogStats handles GET /api/blogs/stats.
func (h *BlogHandler) BlogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.blogService.Stats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors carry their own exact client-facing message
	case domain.IsValidationError(err),
		errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Authentication and authorization errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidAuthorizationHeader),
		errors.Is(err, service.ErrBlogNotOwned):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrBlogNotFound):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation errors pass their message through
// verbatim; everything else maps to a fixed phrase.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "an unexpected error occurred"
	}

	switch {
	// Validation messages are part of the API contract and safe to return
	case domain.IsValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrUsernameExists):
		return domain.ErrUsernameNotUnique.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid request data"

	case errors.Is(err, auth.ErrInvalidAuthorizationHeader):
		return "invalid authorization header"

	case errors.Is(err, auth.ErrInvalidToken):
		return "invalid token"

	case errors.Is(err, service.ErrBlogNotOwned):
		return "unauthorized"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, store.ErrBlogNotFound):
		return "blog not found"

	default:
		return "an unexpected error occurred"
	}
}

package service

import "errors"

// Application-level errors raised by the services in this package.
var (
	// ErrBlogNotOwned is returned when a user attempts to delete a blog
	// they do not own. Maps to 401 at the HTTP boundary (the platform has
	// always answered non-owner deletes with 401, not 403).
	ErrBlogNotOwned = errors.New("blog not owned by user")
)

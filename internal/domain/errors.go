package domain

import "errors"

// Validation errors shared across the domain. Their messages are part of the
// API contract: they are returned verbatim in 400 responses.
var (
	// ErrPasswordTooShort is returned when a registration password is shorter
	// than three characters. Checked before any hashing is attempted.
	ErrPasswordTooShort = errors.New("password must be at least 3 characters long")

	// ErrUsernameTooShort is returned when a username is shorter than three
	// characters.
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")

	// ErrUsernameNotUnique is returned when a username is already taken.
	ErrUsernameNotUnique = errors.New("username must be unique")

	// ErrTitleMissing is returned when a blog title is absent or blank after
	// trimming whitespace.
	ErrTitleMissing = errors.New("title is missing")

	// ErrURLMissing is returned when a blog url is absent or blank after
	// trimming whitespace.
	ErrURLMissing = errors.New("url is missing")

	// ErrNegativeLikes is returned when a likes value is below zero.
	ErrNegativeLikes = errors.New("likes cannot be negative")

	// ErrEmptyUserID is returned when an entity references no user.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyBlogID is returned when a blog has no ID.
	ErrEmptyBlogID = errors.New("blog ID cannot be empty")

	// ErrEmptyPasswordHash is returned when a user is built without a
	// password hash.
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
)

// IsValidationError reports whether err is one of the input-validation
// sentinels above. Validation errors map to 400 responses and are always
// detected before any persistence side effect.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrUsernameTooShort) ||
		errors.Is(err, ErrUsernameNotUnique) ||
		errors.Is(err, ErrTitleMissing) ||
		errors.Is(err, ErrURLMissing) ||
		errors.Is(err, ErrNegativeLikes)
}

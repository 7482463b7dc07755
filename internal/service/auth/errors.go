package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, carries no user id,
	// or its signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrInvalidAuthorizationHeader indicates the Authorization header is
	// missing or not of the exact form "Bearer <token>". Distinct from
	// ErrInvalidToken: the header never parsed far enough to yield a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

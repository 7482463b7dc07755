package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function
// for predictable testing. Not for production use: it skips the secret
// length check.
func NewTestJWTService(secret string, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey: []byte(secret),
		timeFunc:   timeFunc,
	}
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/bloglist-api/internal/api/shared"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	users      store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
// The user store is consulted on every request so that tokens for deleted
// users stop working immediately.
func NewAuthMiddleware(jwtService auth.JWTService, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the user ID to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := ExtractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			shared.RespondWithError(
				w,
				r,
				http.StatusUnauthorized,
				"invalid authorization header",
			)
			return
		}

		// Validate token
		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid token")
			return
		}

		// The token may outlive its user. Look the user up on every request;
		// a deleted user's tokens must not authenticate.
		if _, err := m.users.GetByID(r.Context(), claims.UserID); err != nil {
			if store.IsNotFoundError(err) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid token")
				return
			}
			slog.Error("failed to load user during authentication", "error", err)
			shared.RespondWithError(
				w,
				r,
				http.StatusInternalServerError,
				"authentication error",
			)
			return
		}

		// Add user ID to context
		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)

		// Continue with the authenticated request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractBearerToken parses a raw Authorization header value of the exact form
// "Bearer <token>": case-sensitive prefix, single space separator. Returns
// auth.ErrInvalidAuthorizationHeader for anything else.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrInvalidAuthorizationHeader
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", auth.ErrInvalidAuthorizationHeader
	}

	// The token is everything after the single separator space, taken
	// verbatim. Any further whitespace means the header is malformed.
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", auth.ErrInvalidAuthorizationHeader
	}

	return token, nil
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}

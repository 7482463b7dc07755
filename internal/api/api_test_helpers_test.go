package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/bloglist-api/internal/api"
	apiMiddleware "github.com/phrazzld/bloglist-api/internal/api/middleware"
	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store/memory"
)

const testSecret = "test-secret-key-thats-32-chars-long!"

// testServer wires the full HTTP surface against in-memory stores, mirroring
// the production router.
type testServer struct {
	router     http.Handler
	users      *memory.UserStore
	blogs      *memory.BlogStore
	jwtService auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := memory.NewUserStore()
	blogs := memory.NewBlogStore()
	jwtService := auth.NewTestJWTService(testSecret, time.Now)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	userService, err := service.NewUserService(nil, users, blogs, hasher, nil)
	require.NoError(t, err)
	blogService, err := service.NewBlogService(blogs, users, nil)
	require.NoError(t, err)

	authHandler := api.NewAuthHandler(users, jwtService, auth.NewBcryptVerifier(), nil)
	userHandler := api.NewUserHandler(userService, nil)
	blogHandler := api.NewBlogHandler(blogService, nil)
	authMiddleware := apiMiddleware.NewAuthMiddleware(jwtService, users)

	r := chi.NewRouter()
	r.Use(apiMiddleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Get("/users", userHandler.ListUsers)
		r.Post("/users", userHandler.CreateUser)
		r.Delete("/users/{id}", userHandler.DeleteUser)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.ListBlogs)
			r.Get("/stats", blogHandler.BlogStats)
			r.Get("/{id}", blogHandler.GetBlog)
			r.Put("/{id}", blogHandler.UpdateBlog)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", blogHandler.CreateBlog)
				r.Delete("/{id}", blogHandler.DeleteBlog)
			})
		})
	})

	return &testServer{
		router:     r,
		users:      users,
		blogs:      blogs,
		jwtService: jwtService,
	}
}

// do runs a request through the router and returns the recorder.
func (ts *testServer) do(
	t *testing.T,
	method, path, token string,
	body interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// registerUser seeds a user directly into the store with a real (min-cost)
// bcrypt hash and returns the user plus a valid token.
func (ts *testServer) registerUser(t *testing.T, username, password string) (*domain.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := domain.NewUser(username, "", string(hash))
	require.NoError(t, err)
	require.NoError(t, ts.users.Create(context.Background(), user))

	token, err := ts.jwtService.GenerateToken(context.Background(), user.ID, username)
	require.NoError(t, err)
	return user, token
}

// decodeBody unmarshals a JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

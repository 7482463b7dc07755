package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/bloglist-api/internal/api"
	apiMiddleware "github.com/phrazzld/bloglist-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	blogHandler := api.NewBlogHandler(app.blogService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoint (public)
		r.Post("/login", authHandler.Login)

		// User directory (public)
		r.Get("/users", userHandler.ListUsers)
		r.Post("/users", userHandler.CreateUser)
		r.Delete("/users/{id}", userHandler.DeleteUser)

		// Blog registry
		r.Route("/blogs", func(r chi.Router) {
			// Public reads and the unauthenticated update
			r.Get("/", blogHandler.ListBlogs)
			r.Get("/stats", blogHandler.BlogStats)
			r.Get("/{id}", blogHandler.GetBlog)
			r.Put("/{id}", blogHandler.UpdateBlog)

			// Mutations gated on a valid bearer token
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", blogHandler.CreateBlog)
				r.Delete("/{id}", blogHandler.DeleteBlog)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

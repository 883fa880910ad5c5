package api

import (
	"net/http"

	"github.com/dom/book-catalog/internal/api/handlers"
	"github.com/dom/book-catalog/internal/api/middleware"
	"github.com/dom/book-catalog/internal/config"
	"github.com/dom/book-catalog/internal/service"
	"github.com/dom/book-catalog/internal/validation"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.Throttle(float64(cfg.ThrottleRPS), cfg.ThrottleBurst))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	validator := validation.New()
	authHandler := handlers.NewAuthHandler(services.Auth, validator)
	bookHandler := handlers.NewBookHandler(services.Book, validator)

	r.Route("/api", func(r chi.Router) {
		// Public user routes
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Protected book routes
		r.Route("/books", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Post("/", bookHandler.Add)
			r.Get("/", bookHandler.GetAll)
			r.Get("/{id}", bookHandler.Get)
			r.Put("/{id}", bookHandler.Update)
			r.Delete("/{id}", bookHandler.Delete)
		})
	})

	return r
}

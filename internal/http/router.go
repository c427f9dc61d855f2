package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/granjasoft/avicola-tracker/docs"
	"github.com/granjasoft/avicola-tracker/internal/http/handlers"
	rl "github.com/granjasoft/avicola-tracker/internal/http/rate_limiter"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	// Credential endpoints carry the per-IP limiter as a brute-force guard;
	// everything behind the auth middleware is already gated by a token.
	r.Group(func(r chi.Router) {
		r.Use(rl.Middleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/dashboard", handlers.GetDashboardHandler)

		r.Get("/batches", handlers.GetBatchesHandler)
		r.Post("/batches", handlers.CreateBatchHandler)
		r.Put("/batches/{id}/close", handlers.CloseBatchHandler)
		r.Get("/batches/{id}/records", handlers.GetBatchRecordsHandler)
		r.Post("/records", handlers.CreateRecordHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
	})

	return r
}

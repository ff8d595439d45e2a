package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/photoupload/service/internal/config"
	"github.com/photoupload/service/internal/health"
	"github.com/photoupload/service/internal/metrics"
	appMiddleware "github.com/photoupload/service/internal/middleware"
	"github.com/photoupload/service/internal/photo"
	"github.com/photoupload/service/internal/response"
	"github.com/photoupload/service/internal/storage"
)

func buildRouter(cfg *config.Config, reg *metrics.Registry, store storage.Storage, photos *photo.Handler, probes *health.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(reg))
	r.Use(appMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", appMiddleware.RequestIDHeader},
		ExposedHeaders: []string{appMiddleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "Method not allowed")
	})

	r.Get("/health", probes.Health)
	r.Get("/ready", probes.Ready)
	r.Get("/metrics", reg.HandleText)
	r.Get("/metrics.json", reg.HandleJSON)

	// Swagger UI at /swagger/, off in production
	if !cfg.IsProduction() {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Post("/upload", photos.Upload)

	// An empty filename segment still reaches the handler so it can answer 400.
	r.Delete("/delete", photos.Delete)
	r.Delete("/delete/", photos.Delete)
	r.Delete("/delete/{filename}", photos.Delete)

	// The in-memory backend has no server of its own, so its public URLs are served here.
	if mem, ok := store.(*storage.MemoryStorage); ok {
		if prefix := cfg.PublicPath(); prefix != "" {
			r.Get(prefix+"/*", http.StripPrefix(prefix+"/", mem).ServeHTTP)
		}
	}

	return r
}

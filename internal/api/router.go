package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/proposalboard/proposalboard/internal/db"
	_ "github.com/proposalboard/proposalboard/internal/docs"
)

// NewRouter builds the HTTP router for the proposal listing service.
func NewRouter(store *db.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Permissive cross-origin policy: mirror the request origin, allow
	// credentials, any method, any header.
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	proposalH := NewProposalHandler(store)

	r.Get("/", Root)
	r.Get("/proposals", proposalH.List)

	// Kubernetes health probes (unauthenticated)
	r.Get("/healthz", Healthz)
	r.Get("/readyz", Readyz(store))

	// API Documentation (Swagger UI)
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	return r
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

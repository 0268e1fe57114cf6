package handler

import (
	"context"
	"net/http"
	"time"
)

// DB is the minimal database surface the shared handler needs.
type DB interface {
	Ping(ctx context.Context) error
}

// Handler carries the shared pieces: database for health checks, CORS
// origin allow-list and service descriptor metadata.
type Handler struct {
	db             DB
	company        string
	allowedOrigins []string
	startedAt      time.Time
}

// New creates the shared Handler.
func New(db DB, company string, allowedOrigins []string) *Handler {
	return &Handler{
		db:             db,
		company:        company,
		allowedOrigins: allowedOrigins,
		startedAt:      time.Now(),
	}
}

// CORS allows cross-origin requests from the configured origins. An
// allow-list entry of "*" admits any origin. Requests without an Origin
// header (curl, server-to-server) pass through untouched.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && h.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	for _, o := range h.allowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// Root handles GET / with a service descriptor, and doubles as the
// catch-all: any other unmatched path gets the JSON 404.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": h.company + " - API Server",
		"company": h.company,
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":  "/health",
			"contact": "/api/contact",
			"quote":   "/api/quote",
		},
	})
}

// NotFound is the JSON 404 responder for unmatched routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, apiResponse{
		Success: false,
		Message: "Route not found",
	})
}

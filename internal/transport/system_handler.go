package transport

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"esg-recommender/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// HealthChecker reports backend health, satisfied by database.Service
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

// SystemHandler serves health, the API index and the single-page frontend
type SystemHandler struct {
	db        HealthChecker
	staticDir string
}

// NewSystemHandler creates a new SystemHandler. An empty staticDir disables
// frontend serving.
func NewSystemHandler(db HealthChecker, staticDir string) *SystemHandler {
	return &SystemHandler{db: db, staticDir: staticDir}
}

// RegisterRoutes registers health, index and static routes
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/api/health", h.Health)
	r.Get("/api", h.Index)
	r.Get("/api/", h.Index)

	if h.staticDir != "" {
		r.Get("/*", h.Static)
	}
}

// Health reports service and database status
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbHealth := h.db.Health(r.Context())

	status, code := "ok", http.StatusOK
	if dbHealth["status"] != "up" {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	middleware.RespondWithJSON(w, code, map[string]interface{}{
		"status":   status,
		"message":  "ESG Recommender API is running",
		"database": dbHealth,
	})
}

// Index lists the main API endpoints
func (h *SystemHandler) Index(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "ESG Recommender API",
		"status":  "running",
		"endpoints": map[string]string{
			"health":         "/api/health",
			"products":       "/api/products",
			"score":          "/api/score",
			"cart":           "/api/cart",
			"recommendation": "/api/recommendation",
			"users":          "/api/users/{name}",
		},
	})
}

// Static serves files from the frontend build and falls back to index.html
// so client-side routes resolve. Unknown /api paths still 404.
func (h *SystemHandler) Static(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		middleware.NotFoundHandler(w, r)
		return
	}

	root := http.Dir(h.staticDir)
	name := path.Clean("/" + r.URL.Path)

	if f, err := root.Open(name); err == nil {
		stat, statErr := f.Stat()
		f.Close()
		if statErr == nil && !stat.IsDir() {
			http.FileServer(root).ServeHTTP(w, r)
			return
		}
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		middleware.NotFoundHandler(w, r)
		return
	}
	http.ServeFile(w, r, index)
}

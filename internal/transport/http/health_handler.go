package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// HealthHandler handles health-related HTTP requests
type HealthHandler struct {
	logger  *slog.Logger
	version string
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger.With(slog.String("handler", "health")),
		version: version,
		started: time.Now(),
	}
}

// HealthCheck handles GET /healthz
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":  "healthy",
		"version": h.version,
		"uptime":  time.Since(h.started).String(),
	})
}

// LivenessCheck handles GET /healthz/live
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"status": "alive"})
}

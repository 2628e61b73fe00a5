package handler

import (
	"net/http"
	"time"

	"lightningcath-stock-api/pkg/response"
)

// Handler contains the shared status/health HTTP handlers.
type Handler struct {
	version   string
	startTime time.Time
}

// New creates a new handler.
func New(version string) *Handler {
	return &Handler{version: version, startTime: time.Now()}
}

// Status handles GET /api/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Ready handles GET /api/v1/ready
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ready"})
}

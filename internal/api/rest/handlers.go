package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Vicentealoise3/strike-latino-2a/internal/cache"
	"github.com/Vicentealoise3/strike-latino-2a/internal/service"
)

// PayloadStore is the cache surface the handlers read from.
type PayloadStore interface {
	LoadPayload(ctx context.Context) (*cache.Payload, error)
}

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	store PayloadStore
	svc   *service.Service
}

// NewHandler creates a new handler.
func NewHandler(store PayloadStore, svc *service.Service) *Handler {
	return &Handler{store: store, svc: svc}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "strike-latino",
	})
}

// GetFull serves the cached payload: standings, today's games, and the
// refresh timestamp. Returns 503 until the first refresh lands in the cache.
func (h *Handler) GetFull(w http.ResponseWriter, r *http.Request) {
	payload, err := h.store.LoadPayload(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load cached payload", err)
		return
	}
	if payload == nil {
		respondError(w, http.StatusServiceUnavailable, "Cache not available", nil)
		return
	}

	respondJSON(w, http.StatusOK, payload)
}

// GetStandings computes the standings table on request, bypassing the cache.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.ComputeRows(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"standings": rows,
		"count":     len(rows),
	})
}

// GetGamesToday computes today's games on request, bypassing the cache.
func (h *Handler) GetGamesToday(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.GamesToday(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute today's games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": lines,
		"count": len(lines),
	})
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}

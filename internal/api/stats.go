package api

import (
	"net/http"

	"github.com/erazemk/najdeno/internal/stats"
	"github.com/erazemk/najdeno/internal/store"
)

// StatsHandler handles the dashboard aggregates endpoint.
type StatsHandler struct {
	Store *store.Store
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, stats.Compute(h.Store.Items(), h.Store.Categories()))
}

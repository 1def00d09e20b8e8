package api

import (
	"net/http"

	"github.com/levantva/crewcenter/internal/buildinfo"
)

// HealthResponse is the reply of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Mode    string `json:"mode"`
	Version string `json:"version"`
	Clients int    `json:"clients"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	mode := "mock"
	if h.deps.Data.Live() {
		mode = "live"
	}
	clients := 0
	if h.hub != nil {
		clients = h.hub.ClientCount()
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Mode:    mode,
		Version: buildinfo.Version(),
		Clients: clients,
	})
}

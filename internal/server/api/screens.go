package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/client/viewmodel"
)

// DashboardResponse is one dashboard snapshot.
type DashboardResponse struct {
	screens.DashboardData
	UpdatedAt time.Time `json:"updatedAt"`
}

// LiveMapResponse lists the flights on the map.
type LiveMapResponse struct {
	Flights   []models.Flight `json:"flights"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.loadDashboard(r.Context())
	if err == nil {
		err = snap.Err
	}
	if err != nil {
		h.log.Error(r.Context(), "dashboard load failed", "error", err)
		WriteError(w, http.StatusServiceUnavailable, ErrUnavailable, "Failed to load dashboard data")
		return
	}
	writeJSON(w, http.StatusOK, DashboardResponse{DashboardData: snap.Data, UpdatedAt: snap.UpdatedAt})
}

func (h *Handler) LiveMap(w http.ResponseWriter, r *http.Request) {
	m, err := h.loadLiveMap(r.Context())
	if err != nil {
		WriteError(w, http.StatusServiceUnavailable, ErrUnavailable, "Failed to load flights")
		return
	}
	defer m.Unmount()

	snap := m.Snapshot()
	if snap.Err != nil {
		WriteError(w, http.StatusServiceUnavailable, ErrUnavailable, "Failed to load flights")
		return
	}
	writeJSON(w, http.StatusOK, LiveMapResponse{Flights: snap.Data, UpdatedAt: snap.UpdatedAt})
}

func (h *Handler) Flight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec := h.deps.Data.FetchFlightByID(r.Context(), id)
	if rec == nil {
		WriteError(w, http.StatusNotFound, ErrNotFound, "Flight not found")
		return
	}
	writeJSON(w, http.StatusOK, viewmodel.Flight(*rec, h.now()))
}

func (h *Handler) AirportFlights(w http.ResponseWriter, r *http.Request) {
	icao := strings.ToUpper(mux.Vars(r)["icao"])
	if len(icao) != 4 {
		WriteError(w, http.StatusBadRequest, ErrValidation, "ICAO code must have four letters")
		return
	}
	records := h.deps.Data.FetchFlightsByAirport(r.Context(), icao)
	writeJSON(w, http.StatusOK, viewmodel.Flights(records, h.now()))
}

func (h *Handler) Pilot(w http.ResponseWriter, r *http.Request) {
	u := h.deps.Data.FetchPilotByID(r.Context(), mux.Vars(r)["id"])
	if u == nil {
		WriteError(w, http.StatusNotFound, ErrNotFound, "Pilot not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, screens.LoadEvents(r.Context(), h.deps))
}

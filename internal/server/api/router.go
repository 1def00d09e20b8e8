package api

import (
	"github.com/gorilla/mux"
)

// NewRouter wires every route under /api and the WebSocket at /ws.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.Use(Logging(h.log))
	r.Use(ErrorRecovery(h.log))

	r.HandleFunc("/ws", h.WebSocket).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.Health).Methods("GET")

	api.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	api.HandleFunc("/livemap", h.LiveMap).Methods("GET")
	api.HandleFunc("/flights/{id}", h.Flight).Methods("GET")
	api.HandleFunc("/airports/{icao}/flights", h.AirportFlights).Methods("GET")
	api.HandleFunc("/pilots/{id}", h.Pilot).Methods("GET")
	api.HandleFunc("/events", h.Events).Methods("GET")

	api.HandleFunc("/session", h.GetSession).Methods("GET")
	api.HandleFunc("/session", h.Login).Methods("POST")
	api.HandleFunc("/session", h.UpdateSession).Methods("PATCH")
	api.HandleFunc("/session", h.Logout).Methods("DELETE")
	api.HandleFunc("/profile", h.Profile).Methods("GET")

	api.HandleFunc("/language", h.GetLanguage).Methods("GET")
	api.HandleFunc("/language", h.SetLanguage).Methods("PUT")
	api.HandleFunc("/translations/{lang}", h.Translations).Methods("GET")

	api.HandleFunc("/toasts", h.Toasts).Methods("GET")
	api.HandleFunc("/toasts/{id}", h.DismissToast).Methods("DELETE")

	return r
}

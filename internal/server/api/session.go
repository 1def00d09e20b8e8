package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/common"
)

// SessionResponse describes the signed-in member, if any.
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user"`
	Mode          string       `json:"mode"`
}

// LoginRequest is the body of POST /api/session.
type LoginRequest struct {
	Callsign string `json:"callsign"`
	Password string `json:"password"`
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	resp := SessionResponse{Mode: string(h.session.Mode())}
	if u, ok := h.session.Current(); ok {
		resp.Authenticated = true
		resp.User = &u
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, ErrBadRequest, "Invalid request body")
		return
	}

	u, err := h.session.Login(r.Context(), req.Callsign, req.Password)
	switch {
	case errors.Is(err, common.ErrMissingCredentials):
		WriteError(w, http.StatusBadRequest, ErrValidation, "Callsign and password are required")
		return
	case errors.Is(err, common.ErrInvalidCredentials):
		h.deps.Toasts.Error("Login Failed", "Invalid callsign or password")
		WriteError(w, http.StatusUnauthorized, ErrUnauthorized, "Invalid callsign or password")
		return
	case err != nil:
		h.log.Error(r.Context(), "login failed", "error", err)
		WriteError(w, http.StatusInternalServerError, ErrInternalError, "Login failed")
		return
	}
	h.deps.Toasts.Success("Login Successful", fmt.Sprintf("Welcome back, %s!", u.Callsign))
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		WriteError(w, http.StatusBadRequest, ErrBadRequest, "Invalid request body")
		return
	}
	if patch.TotalHours != nil && *patch.TotalHours < 0 {
		WriteError(w, http.StatusBadRequest, ErrValidation, "totalHours must not be negative")
		return
	}

	u, ok, err := h.session.Update(r.Context(), patch)
	if err != nil {
		h.log.Error(r.Context(), "session update failed", "error", err)
		WriteError(w, http.StatusInternalServerError, ErrInternalError, "Update failed")
		return
	}
	if !ok {
		WriteError(w, http.StatusUnauthorized, ErrUnauthorized, "Not signed in")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		h.log.Error(r.Context(), "logout failed", "error", err)
		WriteError(w, http.StatusInternalServerError, ErrInternalError, "Logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.session.Current()
	if !ok {
		WriteError(w, http.StatusUnauthorized, ErrUnauthorized, "Not signed in")
		return
	}
	writeJSON(w, http.StatusOK, screens.BuildProfile(u))
}

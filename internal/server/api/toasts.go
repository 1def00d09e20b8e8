package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/levantva/crewcenter/internal/client/toast"
)

func (h *Handler) Toasts(w http.ResponseWriter, r *http.Request) {
	list := h.deps.Toasts.List()
	if list == nil {
		list = []toast.Toast{}
	}
	writeJSON(w, http.StatusOK, list)
}

// DismissToast removes a toast. Unknown ids are not an error.
func (h *Handler) DismissToast(w http.ResponseWriter, r *http.Request) {
	h.deps.Toasts.Remove(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/levantva/crewcenter/internal/client/i18n"
)

// LanguageResponse is the current UI language.
type LanguageResponse struct {
	Language  i18n.Language  `json:"language"`
	Direction i18n.Direction `json:"direction"`
}

type languageRequest struct {
	Language string `json:"language"`
}

func (h *Handler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguageResponse{
		Language:  h.translator.Language(),
		Direction: h.translator.Direction(),
	})
}

func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, ErrBadRequest, "Invalid request body")
		return
	}
	if err := h.translator.SetLanguage(r.Context(), req.Language); err != nil {
		if errors.Is(err, i18n.ErrUnsupportedLanguage) {
			WriteError(w, http.StatusBadRequest, ErrValidation, err.Error())
			return
		}
		h.log.Error(r.Context(), "saving language failed", "error", err)
		WriteError(w, http.StatusInternalServerError, ErrInternalError, "Saving language failed")
		return
	}
	h.GetLanguage(w, r)
}

func (h *Handler) Translations(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.Parse(mux.Vars(r)["lang"])
	if err != nil {
		WriteError(w, http.StatusNotFound, ErrNotFound, err.Error())
		return
	}
	table, err := i18n.Table(lang)
	if err != nil {
		WriteError(w, http.StatusNotFound, ErrNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, table)
}

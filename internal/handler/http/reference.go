package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) resolveReference(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	bypass := r.URL.Query().Get("bypass") == "true"

	entry := h.services.ReferenceService.Resolve(r.Context(), uid, bypass)
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) removeReference(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	h.services.ReferenceService.Remove(uid)
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) openTicket(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ticketID := chi.URLParam(r, "ticketID")

	var body models.OpenTicketRequest
	if err := decodeBody(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.openTicket").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.WorkflowService.OpenTicket(r.Context(), ticketID, body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.openTicket").Str("ticket_id", ticketID).Msg("error opening ticket")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) changeType(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ticketID := chi.URLParam(r, "ticketID")

	var body models.TypeChangeRequest
	if err := decodeBody(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.changeType").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.WorkflowService.ChangeType(r.Context(), ticketID, body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.changeType").Str("ticket_id", ticketID).Msg("error changing secret type")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) saveRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ticketID := chi.URLParam(r, "ticketID")

	var body models.SaveRequestBody
	if err := decodeBody(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.saveRequest").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.WorkflowService.SaveRequest(r.Context(), ticketID, body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveRequest").Str("ticket_id", ticketID).Msg("error saving request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) clearRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ticketID := chi.URLParam(r, "ticketID")

	result, err := h.services.WorkflowService.ClearRequest(r.Context(), ticketID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.clearRequest").Str("ticket_id", ticketID).Msg("error clearing request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ticketID := chi.URLParam(r, "ticketID")

	var body models.SaveRequestBody
	if err := decodeBody(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.execute").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.WorkflowService.Execute(r.Context(), ticketID, body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.execute").Str("ticket_id", ticketID).Msg("error executing request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ticketID := chi.URLParam(r, "ticketID")

	var body models.RejectRequestBody
	if err := decodeBody(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.reject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.WorkflowService.Reject(r.Context(), ticketID, body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.reject").Str("ticket_id", ticketID).Msg("error rejecting request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// decodeBody decodes the request body into dst. An empty body is accepted:
// several endpoints treat the body as optional.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	return err
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

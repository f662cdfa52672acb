package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) AlertList(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp, err := h.Alerts.List(r.Context(), device)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AlertMarkViewed(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Alerts.MarkViewed(r.Context(), id, device); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

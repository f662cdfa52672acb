package public

import (
	"encoding/json"
	"net/http"

	"safesignal/internal/domain"
)

func (h *Handler) SettingsGet(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	settings, err := h.Settings.Get(r.Context(), device)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req domain.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	settings, err := h.Settings.Update(r.Context(), device, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, settings)
}

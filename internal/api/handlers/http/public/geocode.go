package public

import (
	"net/http"
	"strconv"

	"safesignal/internal/geocode"
	"safesignal/pkg/geo"
)

func (h *Handler) GeocodeSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query"})
		return
	}

	places, err := h.Geocoder.Search(r.Context(), query)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"places": places})
}

func (h *Handler) GeocodeReverse(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil || !geo.ValidCoordinates(lat, lng) {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid coordinates"})
		return
	}

	place, err := h.Geocoder.Reverse(r.Context(), lat, lng)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"place":   place,
		"address": geocode.FormatAddress(place.DisplayName),
	})
}

package public

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"safesignal/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) FavoriteCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	fav, err := h.Favorites.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("favorite created", slog.String("id", fav.ID.String()), slog.String("name", fav.Name))
	h.writeJSON(w, http.StatusCreated, fav)
}

func (h *Handler) FavoriteList(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	favorites, err := h.Favorites.List(r.Context(), device)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"favorites": favorites})
}

func (h *Handler) FavoriteGet(w http.ResponseWriter, r *http.Request) {
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

	fav, err := h.Favorites.Get(r.Context(), id, device)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, fav)
}

func (h *Handler) FavoriteUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req domain.UpdateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	fav, err := h.Favorites.Update(r.Context(), id, device, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, fav)
}

func (h *Handler) FavoriteDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

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

	if err := h.Favorites.Delete(r.Context(), id, device); err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("favorite deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

package public

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating report",
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.String("category", string(req.Category)),
	)

	id, err := h.Reports.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("report created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) ReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	req := domain.ListReportsRequest{
		Page:  parseInt(r.URL.Query().Get("page"), 1),
		Limit: parseInt(r.URL.Query().Get("limit"), 20),
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit > 100 {
		req.Limit = 100
		l.Warn("limit capped", slog.Int("limit", req.Limit))
	}

	reports, total, err := h.Reports.List(r.Context(), req.Page, req.Limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.ListReportsResponse{
		Reports: reports,
		Page:    req.Page,
		Limit:   req.Limit,
		Total:   total,
	})
}

func (h *Handler) ReportGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	report, err := h.Reports.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if report.Status == domain.ReportExpired {
		l.Info("expired report requested", slog.String("id", id.String()))
		h.handleError(w, e.ErrReportExpired)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) LocationCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.LocationCheckRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// reject trailing garbage after the first JSON object
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	resp, err := h.Reports.CheckLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

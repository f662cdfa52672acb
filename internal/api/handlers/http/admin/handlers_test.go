package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safesignal/internal/api/handlers/http/admin"
	mock_admin "safesignal/internal/api/handlers/http/admin/mocks"
	"safesignal/internal/domain"
	"safesignal/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	reports := mock_admin.NewMockAdminReports(ctrl)
	h := admin.NewHandler(newTestLogger(), reports, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=120", nil)
	rr := httptest.NewRecorder()

	stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 120}).
		Return(&domain.UsageStats{DeviceCount: 3, TotalChecks: 9, ReportCount: 2, Minutes: 120}, nil).
		Times(1)

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var got domain.UsageStats
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.DeviceCount != 3 || got.Minutes != 120 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestAdminStats_InvalidMinutes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	reports := mock_admin.NewMockAdminReports(ctrl)
	h := admin.NewHandler(newTestLogger(), reports, stats)

	for _, minutes := range []string{"0", "-5", "1441", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes="+minutes, nil)
		rr := httptest.NewRecorder()

		h.AdminStats(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("minutes=%s: expected 400, got %d", minutes, rr.Code)
		}
	}
}

func TestAdminReportList_CapsLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	reports := mock_admin.NewMockAdminReports(ctrl)
	h := admin.NewHandler(newTestLogger(), reports, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports?page=2&limit=500", nil)
	rr := httptest.NewRecorder()

	reports.EXPECT().
		List(gomock.Any(), 2, 100).
		Return([]*domain.Report{}, int64(0), nil).
		Times(1)

	h.AdminReportList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAdminReportExpire_NoContent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	reports := mock_admin.NewMockAdminReports(ctrl)
	h := admin.NewHandler(newTestLogger(), reports, stats)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/"+id.String()+"/expire", nil)
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	reports.EXPECT().ForceExpire(gomock.Any(), id).Return(nil).Times(1)

	h.AdminReportExpire(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestAdminReportExpire_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	reports := mock_admin.NewMockAdminReports(ctrl)
	h := admin.NewHandler(newTestLogger(), reports, stats)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/"+id.String()+"/expire", nil)
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	reports.EXPECT().ForceExpire(gomock.Any(), id).Return(e.ErrNotFound).Times(1)

	h.AdminReportExpire(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestAdminReportGet_BadID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	reports := mock_admin.NewMockAdminReports(ctrl)
	h := admin.NewHandler(newTestLogger(), reports, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/nope", nil)
	req = withURLParam(req, "id", "nope")
	rr := httptest.NewRecorder()

	h.AdminReportGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

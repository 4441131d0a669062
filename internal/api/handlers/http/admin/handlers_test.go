package admin_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"cadizaccesible/internal/api/handlers/http/admin"
	mock_admin "cadizaccesible/internal/api/handlers/http/admin/mocks"
	"cadizaccesible/internal/domain"
	"cadizaccesible/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func testRouter(h *admin.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/incidents", h.IncidentList)
	r.Get("/incidents/{id}", h.IncidentGet)
	r.Put("/incidents/{id}/status", h.IncidentUpdateStatus)
	r.Delete("/incidents/{id}", h.IncidentDelete)
	r.Get("/stats", h.StatsSummary)
	return r
}

func TestIncidentUpdateStatus_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents, mock_admin.NewMockStats(ctrl))

	incidents.EXPECT().
		UpdateStatus(gomock.Any(), "1", domain.StatusResolved, "ramp fixed").
		Return(&domain.Incident{ID: "1", Status: domain.StatusResolved, AdminRemark: "ramp fixed"}, nil).
		Times(1)

	body := `{"status":"RESOLVED","remark":"ramp fixed"}`
	req := httptest.NewRequest(http.MethodPut, "/incidents/1/status", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Incident](t, rr)
	if got.Status != domain.StatusResolved || got.AdminRemark != "ramp fixed" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestIncidentUpdateStatus_UnknownStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidents(ctrl), mock_admin.NewMockStats(ctrl))

	body := `{"status":"DONE","remark":""}`
	req := httptest.NewRequest(http.MethodPut, "/incidents/1/status", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestIncidentUpdateStatus_AbsentID_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents, mock_admin.NewMockStats(ctrl))

	incidents.EXPECT().
		UpdateStatus(gomock.Any(), "X", domain.StatusAccepted, "").
		Return(nil, fmt.Errorf("no row: %w", e.ErrNotFound)).
		Times(1)

	body := `{"status":"ACCEPTED","remark":""}`
	req := httptest.NewRequest(http.MethodPut, "/incidents/X/status", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestIncidentList_ReturnsTotal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents, mock_admin.NewMockStats(ctrl))

	incidents.EXPECT().
		GetAll(gomock.Any()).
		Return([]*domain.Incident{{ID: "2"}, {ID: "1"}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/incidents", nil)
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[struct {
		Incidents []domain.Incident `json:"incidents"`
		Total     int               `json:"total"`
	}](t, rr)
	if got.Total != 2 || got.Incidents[0].ID != "2" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestIncidentGet_CorruptRow_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockIncidents(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents, mock_admin.NewMockStats(ctrl))

	incidents.EXPECT().
		GetByID(gomock.Any(), "1").
		Return(nil, fmt.Errorf("unknown status %q: %w", "WAITING", e.ErrParse)).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/incidents/1", nil)
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["error"] != "corrupt stored value" {
		t.Fatalf("unexpected error body: %+v", got)
	}
}

func TestStatsSummary_FullSnapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStats(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidents(ctrl), stats)

	stats.EXPECT().
		Summary(gomock.Any()).
		Return(&domain.StatsSummary{Total: 4, Urgent: 1, UrgentPercent: 25}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.StatsSummary](t, rr)
	if got.Total != 4 || got.UrgentPercent != 25 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestStatsSummary_StatusFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStats(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidents(ctrl), stats)

	stats.EXPECT().
		TotalByStatus(gomock.Any(), domain.StatusPending).
		Return(int64(3), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/stats?status=PENDING", nil)
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]any](t, rr)
	if got["total"].(float64) != 3 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestStatsSummary_UnknownFilter_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidents(ctrl), mock_admin.NewMockStats(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/stats?status=WAITING", nil)
	rr := httptest.NewRecorder()

	testRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

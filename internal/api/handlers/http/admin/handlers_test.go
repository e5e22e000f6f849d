package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"github.com/swetha221234/smart-rural-connect/internal/api/handlers/http/admin"
	mock_admin "github.com/swetha221234/smart-rural-connect/internal/api/handlers/http/admin/mocks"
	"github.com/swetha221234/smart-rural-connect/internal/domain"
	"github.com/swetha221234/smart-rural-connect/pkg/e"
)

func newTestLogger() *slog.Logger {

	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, *mock_admin.MockComplaintAdmin, *mock_admin.MockReportGetter, *mock_admin.MockAuthenticator) {
	adminSvc := mock_admin.NewMockComplaintAdmin(ctrl)
	reportSvc := mock_admin.NewMockReportGetter(ctrl)
	auth := mock_admin.NewMockAuthenticator(ctrl)
	return admin.NewHandler(newTestLogger(), adminSvc, reportSvc, auth), adminSvc, reportSvc, auth
}

// --- Transition ---

func TestAdminComplaintTransition_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _, _ := newHandler(ctrl)

	resolvedAt := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	want := &domain.Complaint{
		ID:         "RCC123456",
		Status:     domain.StatusResolved,
		ResolvedAt: &resolvedAt,
	}

	adminSvc.EXPECT().
		Transition(gomock.Any(), "RCC123456", domain.StatusResolved).
		Return(want, nil).
		Times(1)

	reqBody := `{"status":"Resolved"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/complaints/RCC123456/status", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", "RCC123456")
	rr := httptest.NewRecorder()

	h.AdminComplaintTransition(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Complaint](t, rr)
	if got.Status != domain.StatusResolved || got.ResolvedAt == nil {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestAdminComplaintTransition_InvalidStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _, _ := newHandler(ctrl)

	adminSvc.EXPECT().
		Transition(gomock.Any(), "RCC123456", domain.Status("Deleted")).
		Return(nil, e.ErrInvalidStatus).
		Times(1)

	reqBody := `{"status":"Deleted"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/complaints/RCC123456/status", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", "RCC123456")
	rr := httptest.NewRecorder()

	h.AdminComplaintTransition(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminComplaintTransition_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _, _ := newHandler(ctrl)

	adminSvc.EXPECT().
		Transition(gomock.Any(), "RCC0000", domain.StatusResolved).
		Return(nil, e.ErrNotFound).
		Times(1)

	reqBody := `{"status":"Resolved"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/complaints/RCC0000/status", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", "RCC0000")
	rr := httptest.NewRecorder()

	h.AdminComplaintTransition(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminComplaintTransition_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/complaints/RCC123456/status", bytes.NewBufferString("{bad"))
	req = addChiURLParam(req, "id", "RCC123456")
	rr := httptest.NewRecorder()

	h.AdminComplaintTransition(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

// --- List ---

func TestAdminComplaintList_OK_WithFilters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _, _ := newHandler(ctrl)

	want := []*domain.Complaint{
		{ID: "RCC000001", Status: domain.StatusPending, Category: domain.CategoryWaterSupply},
	}

	adminSvc.EXPECT().
		List(gomock.Any(), domain.ListFilter{
			Status:   domain.StatusPending,
			Category: domain.CategoryWaterSupply,
		}).
		Return(want, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/complaints?status=Pending&category=Water+Supply", nil)
	rr := httptest.NewRecorder()

	h.AdminComplaintList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ListComplaintsResponse](t, rr)
	if got.Total != 1 || len(got.Complaints) != 1 || got.Complaints[0].ID != "RCC000001" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestAdminComplaintList_BadFilter_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _, _ := newHandler(ctrl)

	adminSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrInvalidStatus).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/complaints?status=Deleted", nil)
	rr := httptest.NewRecorder()

	h.AdminComplaintList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

// --- Report ---

func TestAdminReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, reportSvc, _ := newHandler(ctrl)

	avg := 4.5
	want := &domain.Report{
		Total:        3,
		HighPriority: 1,
		Resolved:     2,
		ByCategory: map[domain.Category]int64{
			domain.CategoryWaterSupply: 2,
			domain.CategoryRoadIssue:   1,
			domain.CategoryElectricity: 0,
			domain.CategorySanitation:  0,
			domain.CategoryGeneral:     0,
		},
		ByStatus: map[domain.Status]int64{
			domain.StatusPending:    1,
			domain.StatusInProgress: 0,
			domain.StatusResolved:   2,
		},
		AvgResolutionHours: &avg,
	}

	reportSvc.EXPECT().
		Summarize(gomock.Any(), domain.ListFilter{}).
		Return(want, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/report", nil)
	rr := httptest.NewRecorder()

	h.AdminReport(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Report](t, rr)
	if got.Total != 3 || got.Resolved != 2 {
		t.Fatalf("unexpected report: %+v", got)
	}
	if got.AvgResolutionHours == nil || *got.AvgResolutionHours != 4.5 {
		t.Fatalf("expected avg=4.5 got=%v", got.AvgResolutionHours)
	}
}

func TestAdminReport_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, reportSvc, _ := newHandler(ctrl)

	reportSvc.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/report", nil)
	rr := httptest.NewRecorder()

	h.AdminReport(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

// --- Login ---

func TestAdminLogin_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, auth := newHandler(ctrl)

	auth.EXPECT().Authenticate("admin123").Return(true).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewBufferString(`{"password":"admin123"}`))
	rr := httptest.NewRecorder()

	h.AdminLogin(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminLogin_WrongPassword_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, auth := newHandler(ctrl)

	auth.EXPECT().Authenticate("nope").Return(false).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewBufferString(`{"password":"nope"}`))
	rr := httptest.NewRecorder()

	h.AdminLogin(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

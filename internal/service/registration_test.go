package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
	"github.com/swetha221234/smart-rural-connect/internal/service"
	mock_service "github.com/swetha221234/smart-rural-connect/internal/service/mocks"
	"github.com/swetha221234/smart-rural-connect/pkg/e"
)

// --- helpers ---

func f64ptr(v float64) *float64 { return &v }

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func validRegisterRequest() domain.RegisterComplaintRequest {
	return domain.RegisterComplaintRequest{
		Name:        "A",
		Description: "urgent water leak",
		Lat:         f64ptr(13.0),
		Lng:         f64ptr(80.0),
	}
}

// --- Register ---

func TestRegistrationService_Register_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockComplaintRepository(ctrl)

	var created *domain.Complaint
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Complaint) error {
			created = c
			return nil
		}).
		Times(1)

	svc := service.NewRegistrationService(repo, nil, newTestLogger())

	got, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != created {
		t.Fatalf("expected returned record to be the persisted one")
	}

	if !strings.HasPrefix(got.ID, "RCC") {
		t.Fatalf("expected RCC-prefixed id, got %q", got.ID)
	}
	if len(got.ID) != len("RCC")+6 {
		t.Fatalf("expected 6-digit suffix, got %q", got.ID)
	}
	if got.Category != domain.CategoryWaterSupply {
		t.Fatalf("expected category=%s got=%s", domain.CategoryWaterSupply, got.Category)
	}
	if got.Priority != domain.PriorityHigh {
		t.Fatalf("expected priority=%s got=%s", domain.PriorityHigh, got.Priority)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("expected status=%s got=%s", domain.StatusPending, got.Status)
	}
	if got.ResolvedAt != nil {
		t.Fatalf("expected resolved_at nil on creation")
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}
	if got.Lat != 13.0 || got.Lng != 80.0 {
		t.Fatalf("coordinates mismatch: (%v,%v)", got.Lat, got.Lng)
	}
}

func TestRegistrationService_Register_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  domain.RegisterComplaintRequest
	}{
		{"missing_name", domain.RegisterComplaintRequest{Description: "water", Lat: f64ptr(1), Lng: f64ptr(1)}},
		{"missing_description", domain.RegisterComplaintRequest{Name: "A", Lat: f64ptr(1), Lng: f64ptr(1)}},
		{"missing_lat", domain.RegisterComplaintRequest{Name: "A", Description: "water", Lng: f64ptr(1)}},
		{"missing_lng", domain.RegisterComplaintRequest{Name: "A", Description: "water", Lat: f64ptr(1)}},
		{"lat_out_of_range", domain.RegisterComplaintRequest{Name: "A", Description: "water", Lat: f64ptr(91), Lng: f64ptr(1)}},
		{"lng_out_of_range", domain.RegisterComplaintRequest{Name: "A", Description: "water", Lat: f64ptr(1), Lng: f64ptr(-181)}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repo calls expected: nothing is persisted on bad input.
			repo := mock_service.NewMockComplaintRepository(ctrl)

			svc := service.NewRegistrationService(repo, nil, newTestLogger())

			_, err := svc.Register(context.Background(), c.req)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got: %v", err)
			}
		})
	}
}

func TestRegistrationService_Register_IDCollision_Retries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockComplaintRepository(ctrl)

	var ids []string
	gomock.InOrder(
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Complaint) error {
				ids = append(ids, c.ID)
				return e.ErrUniqueViolation
			}).
			Times(1),
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Complaint) error {
				ids = append(ids, c.ID)
				return nil
			}).
			Times(1),
	)

	svc := service.NewRegistrationService(repo, nil, newTestLogger())

	got, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 create attempts, got %d", len(ids))
	}
	if got.ID != ids[1] {
		t.Fatalf("expected the retried id on the record")
	}
}

func TestRegistrationService_Register_IDCollision_Exhausted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockComplaintRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(e.ErrUniqueViolation).
		Times(3)

	svc := service.NewRegistrationService(repo, nil, newTestLogger())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	if err == nil {
		t.Fatalf("expected error after exhausted retries")
	}
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected ErrInternal, got: %v", err)
	}
}

func TestRegistrationService_Register_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockComplaintRepository(ctrl)

	wantErr := errors.New("db down")
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(wantErr).
		Times(1)

	svc := service.NewRegistrationService(repo, nil, newTestLogger())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected err=%v got=%v", wantErr, err)
	}
}

func TestRegistrationService_Register_InvalidatesReportCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockComplaintRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	svc := service.NewRegistrationService(repo, cache, newTestLogger())

	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

// --- Track ---

func TestRegistrationService_Track_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockComplaintRepository(ctrl)

	want := &domain.Complaint{ID: "RCC123456", Status: domain.StatusPending}
	repo.EXPECT().
		Get(gomock.Any(), "RCC123456").
		Return(want, nil).
		Times(1)

	svc := service.NewRegistrationService(repo, nil, newTestLogger())

	got, err := svc.Track(context.Background(), "RCC123456")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected complaint: %+v", got)
	}
}

func TestRegistrationService_Track_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockComplaintRepository(ctrl)
	repo.EXPECT().
		Get(gomock.Any(), "RCC0000").
		Return(nil, e.ErrNotFound).
		Times(1)

	svc := service.NewRegistrationService(repo, nil, newTestLogger())

	_, err := svc.Track(context.Background(), "RCC0000")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

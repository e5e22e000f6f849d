package service

import (
	"context"
	"time"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// RegistrationService is the public intake surface: citizens file complaints
// and track them by id.
type RegistrationService interface {
	Register(ctx context.Context, req domain.RegisterComplaintRequest) (*domain.Complaint, error)
	Track(ctx context.Context, id string) (*domain.Complaint, error)
}

// LifecycleService is the operator surface: status transitions and the
// filtered complaint table.
type LifecycleService interface {
	Transition(ctx context.Context, id string, target domain.Status) (*domain.Complaint, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Complaint, error)
}

type ReportService interface {
	Summarize(ctx context.Context, filter domain.ListFilter) (*domain.Report, error)
}

type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) error
	Get(ctx context.Context, id string) (*domain.Complaint, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, resolvedAt *time.Time) (*domain.Complaint, error)
}

type ReportCache interface {
	Get(ctx context.Context) (*domain.Report, error)
	Set(ctx context.Context, report *domain.Report, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	RegistrationService RegistrationService
	LifecycleService    LifecycleService
	ReportService       ReportService
	Auth                *Authenticator
}

func NewService(
	registrationService RegistrationService,
	lifecycleService LifecycleService,
	reportService ReportService,
	auth *Authenticator,
) *Service {
	return &Service{
		RegistrationService: registrationService,
		LifecycleService:    lifecycleService,
		ReportService:       reportService,
		Auth:                auth,
	}
}

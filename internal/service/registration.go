package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"log/slog"

	"github.com/swetha221234/smart-rural-connect/internal/classifier"
	"github.com/swetha221234/smart-rural-connect/internal/domain"
	"github.com/swetha221234/smart-rural-connect/pkg/e"
	"github.com/swetha221234/smart-rural-connect/pkg/validator"
)

const (
	idPrefix = "RCC"
	// idAttempts bounds the retry loop when a generated id collides with an
	// existing row. The suffix space is 10^6, so more than one retry is
	// already rare at any realistic table size.
	idAttempts = 3
)

type registrationService struct {
	repo   ComplaintRepository
	cache  ReportCache
	logger *slog.Logger
}

func NewRegistrationService(repo ComplaintRepository, cache ReportCache, logger *slog.Logger) RegistrationService {
	return &registrationService{repo: repo, cache: cache, logger: logger}
}

func newComplaintID() string {
	return fmt.Sprintf("%s%06d", idPrefix, rand.Intn(1_000_000))
}

func (s *registrationService) Register(ctx context.Context, req domain.RegisterComplaintRequest) (*domain.Complaint, error) {
	const op = "service.Registration.Register"

	if err := validator.ValidateStruct(&req); err != nil {
		s.logger.Warn("register validation failed", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %s: %w", op, err.Error(), e.ErrInvalidInput)
	}

	category, priority := classifier.Classify(req.Description)

	c := &domain.Complaint{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Priority:    priority,
		Status:      domain.StatusPending,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		CreatedAt:   time.Now().UTC(),
	}

	// Ids are short human-typable codes, so collisions are possible; retry
	// with a fresh id instead of overwriting a stranger's complaint.
	var err error
	for attempt := 0; attempt < idAttempts; attempt++ {
		c.ID = newComplaintID()
		err = s.repo.Create(ctx, c)
		if err == nil {
			break
		}
		if !errors.Is(err, e.ErrUniqueViolation) {
			return nil, err
		}
		s.logger.Warn("complaint id collision, retrying",
			slog.String("op", op),
			slog.String("id", c.ID),
			slog.Int("attempt", attempt+1),
		)
	}
	if err != nil {
		s.logger.Error("complaint id space exhausted", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, e.ErrInternal)
	}

	s.invalidateReport(ctx)

	s.logger.Info("complaint registered",
		slog.String("id", c.ID),
		slog.String("category", string(c.Category)),
		slog.String("priority", string(c.Priority)),
	)
	return c, nil
}

func (s *registrationService) Track(ctx context.Context, id string) (*domain.Complaint, error) {
	return s.repo.Get(ctx, id)
}

func (s *registrationService) invalidateReport(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("report cache invalidate failed", slog.Any("error", err))
	}
}

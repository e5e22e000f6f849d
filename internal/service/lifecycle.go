package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
	"github.com/swetha221234/smart-rural-connect/pkg/e"
)

type lifecycleService struct {
	repo   ComplaintRepository
	cache  ReportCache
	logger *slog.Logger
}

func NewLifecycleService(repo ComplaintRepository, cache ReportCache, logger *slog.Logger) LifecycleService {
	return &lifecycleService{repo: repo, cache: cache, logger: logger}
}

// Transition moves a complaint to target. Any state is reachable from any
// state, including Resolved back to Pending; resolving stamps resolved_at and
// every other target clears it, in a single repository write.
func (s *lifecycleService) Transition(ctx context.Context, id string, target domain.Status) (*domain.Complaint, error) {
	const op = "service.Lifecycle.Transition"

	if !target.Valid() {
		s.logger.Warn("rejected transition to unknown status",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("status", string(target)),
		)
		return nil, fmt.Errorf("%s: %q: %w", op, target, e.ErrInvalidStatus)
	}

	var resolvedAt *time.Time
	if target == domain.StatusResolved {
		now := time.Now().UTC()
		resolvedAt = &now
	}

	c, err := s.repo.UpdateStatus(ctx, id, target, resolvedAt)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("report cache invalidate failed", slog.Any("error", err))
		}
	}

	s.logger.Info("complaint transitioned",
		slog.String("id", id),
		slog.String("status", string(target)),
	)
	return c, nil
}

func (s *lifecycleService) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Complaint, error) {
	const op = "service.Lifecycle.List"

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%s: %q: %w", op, filter.Status, e.ErrInvalidStatus)
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%s: %q: %w", op, filter.Category, e.ErrInvalidInput)
	}
	return s.repo.List(ctx, filter)
}

package service

import (
	"context"
	"time"

	"log/slog"

	"github.com/montanaflynn/stats"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
)

type reportService struct {
	repo   ComplaintRepository
	cache  ReportCache
	logger *slog.Logger
	ttl    time.Duration
}

func NewReportService(repo ComplaintRepository, cache ReportCache, logger *slog.Logger, ttl time.Duration) ReportService {
	return &reportService{repo: repo, cache: cache, logger: logger, ttl: ttl}
}

// Summarize builds the dashboard report from a snapshot of the store. Only
// the unfiltered report is cached; filters are ad hoc and cheap to recompute.
func (s *reportService) Summarize(ctx context.Context, filter domain.ListFilter) (*domain.Report, error) {
	const op = "service.Report.Summarize"

	cacheable := filter.Empty() && s.cache != nil

	if cacheable {
		report, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("report cache get failed", slog.String("op", op), slog.Any("error", err))
		} else if report != nil {
			return report, nil
		}
	}

	snapshot, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := BuildReport(snapshot)

	if cacheable {
		if err := s.cache.Set(ctx, report, s.ttl); err != nil {
			s.logger.Warn("report cache set failed", slog.String("op", op), slog.Any("error", err))
		}
	}

	return report, nil
}

// BuildReport aggregates a snapshot of complaint records. It is a pure
// function: counts are zero-filled over the closed enumerations and the mean
// resolution time is nil, not zero, when nothing has been resolved yet.
func BuildReport(snapshot []*domain.Complaint) *domain.Report {
	report := &domain.Report{
		Total:      int64(len(snapshot)),
		ByCategory: make(map[domain.Category]int64, len(domain.AllCategories())),
		ByStatus:   make(map[domain.Status]int64, len(domain.AllStatuses())),
	}
	for _, cat := range domain.AllCategories() {
		report.ByCategory[cat] = 0
	}
	for _, st := range domain.AllStatuses() {
		report.ByStatus[st] = 0
	}

	var hours []float64
	for _, c := range snapshot {
		report.ByCategory[c.Category]++
		report.ByStatus[c.Status]++
		if c.Priority == domain.PriorityHigh {
			report.HighPriority++
		}
		if c.Status == domain.StatusResolved {
			report.Resolved++
		}
		if c.ResolvedAt != nil {
			hours = append(hours, c.ResolvedAt.Sub(c.CreatedAt).Hours())
		}
	}

	if len(hours) > 0 {
		if mean, err := stats.Mean(hours); err == nil {
			report.AvgResolutionHours = &mean
		}
	}

	return report
}

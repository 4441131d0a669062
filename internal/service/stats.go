package service

import (
	"context"
	"log/slog"
	"time"

	"cadizaccesible/internal/domain"
)

const summaryCacheTTL = 30 * time.Second

// StatsService computes the derived aggregate views. All counts come
// straight from the store; nothing is persisted. The dashboard snapshot
// is cached in Redis with a short TTL.
type StatsService struct {
	repo   IncidentRepository
	cache  StatsCacheService
	logger *slog.Logger
}

func NewStatsService(repo IncidentRepository, cache StatsCacheService, logger *slog.Logger) *StatsService {
	return &StatsService{repo: repo, cache: cache, logger: logger}
}

func (s *StatsService) Total(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

func (s *StatsService) TotalUrgent(ctx context.Context) (int64, error) {
	return s.repo.CountUrgent(ctx)
}

func (s *StatsService) TotalByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return s.repo.CountByStatus(ctx, status)
}

func (s *StatsService) TotalBySeverity(ctx context.Context, severity domain.Severity) (int64, error) {
	return s.repo.CountBySeverity(ctx, severity)
}

func (s *StatsService) DistributionByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	return s.repo.GroupByStatus(ctx)
}

func (s *StatsService) DistributionBySeverity(ctx context.Context) ([]domain.SeverityCount, error) {
	return s.repo.GroupBySeverity(ctx)
}

// Summary returns the dashboard snapshot, served from cache when warm.
// Cache failures degrade to a direct recompute, never to an error.
func (s *StatsService) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx)
		if err != nil {
			s.logger.Warn("stats cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := s.Compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, summary, summaryCacheTTL); err != nil {
			s.logger.Warn("stats cache write failed", slog.Any("error", err))
		}
	}

	return summary, nil
}

// Compute builds the snapshot from the store, bypassing the cache.
func (s *StatsService) Compute(ctx context.Context) (*domain.StatsSummary, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	urgent, err := s.repo.CountUrgent(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.GroupByStatus(ctx)
	if err != nil {
		return nil, err
	}
	bySeverity, err := s.repo.GroupBySeverity(ctx)
	if err != nil {
		return nil, err
	}

	var percent int64
	if total > 0 {
		percent = (urgent * 100) / total
	}

	return &domain.StatsSummary{
		Total:         total,
		Urgent:        urgent,
		UrgentPercent: percent,
		ByStatus:      byStatus,
		BySeverity:    bySeverity,
	}, nil
}

// WatchSummary emits a fresh snapshot immediately and after every
// incidents-table write, until ctx is done.
func (s *StatsService) WatchSummary(ctx context.Context) <-chan *domain.StatsSummary {
	out := make(chan *domain.StatsSummary, 1)
	changes := s.repo.Watch(ctx)

	go func() {
		defer close(out)

		emit := func() bool {
			summary, err := s.Compute(ctx)
			if err != nil {
				s.logger.Warn("live summary failed", slog.Any("error", err))
				return ctx.Err() == nil
			}
			select {
			case out <- summary:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				if !emit() {
					return
				}
			}
		}
	}()

	return out
}

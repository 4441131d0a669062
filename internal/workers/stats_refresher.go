package workers

import (
	"context"
	"log/slog"
	"time"

	"cadizaccesible/internal/domain"
)

type SummaryComputer interface {
	Compute(ctx context.Context) (*domain.StatsSummary, error)
}

type SummaryCache interface {
	SetSummary(ctx context.Context, summary *domain.StatsSummary, ttl time.Duration) error
}

type TableWatcher interface {
	Watch(ctx context.Context) <-chan struct{}
}

// StatsRefresher keeps the Redis dashboard snapshot warm. It recomputes
// on every incidents-table change and on a slow ticker so the snapshot
// survives cache expiry even when the table is quiet.
type StatsRefresher struct {
	stats    SummaryComputer
	cache    SummaryCache
	watcher  TableWatcher
	logger   *slog.Logger
	ttl      time.Duration
	interval time.Duration
}

func NewStatsRefresher(stats SummaryComputer, cache SummaryCache, watcher TableWatcher, logger *slog.Logger) *StatsRefresher {
	return &StatsRefresher{
		stats:    stats,
		cache:    cache,
		watcher:  watcher,
		logger:   logger,
		ttl:      time.Minute,
		interval: 30 * time.Second,
	}
}

func (w *StatsRefresher) Run(ctx context.Context) {
	changes := w.watcher.Watch(ctx)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("statsRefresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			w.refresh(ctx)
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsRefresher) refresh(ctx context.Context) {
	summary, err := w.stats.Compute(ctx)
	if err != nil {
		w.logger.Warn("stats recompute failed", slog.Any("error", err))
		return
	}
	if err := w.cache.SetSummary(ctx, summary, w.ttl); err != nil {
		w.logger.Warn("stats cache refresh failed", slog.Any("error", err))
	}
}

package service

import (
	"context"
	"log/slog"
	"time"

	"cadizaccesible/internal/domain"
)

// StatusWorkflow is the only path that moves an incident out of PENDING.
// Any state may currently move to any other state; the transition table
// is deliberately unguarded and this is the single place to tighten it.
type StatusWorkflow struct {
	repo   IncidentRepository
	events StatusEventSink
	logger *slog.Logger
}

func NewStatusWorkflow(repo IncidentRepository, events StatusEventSink, logger *slog.Logger) *StatusWorkflow {
	return &StatusWorkflow{repo: repo, events: events, logger: logger}
}

// Apply writes (target, remark) to the incident and returns the re-read
// record so the caller never sees stale in-memory state. An absent id
// reports ErrNotFound without writing. A delete racing between the write
// and the re-read also yields ErrNotFound; the store stays consistent.
func (w *StatusWorkflow) Apply(ctx context.Context, id string, target domain.Status, remark string) (*domain.Incident, error) {
	const op = "service.Workflow.Apply"

	current, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := w.repo.UpdateStatus(ctx, id, target, remark); err != nil {
		return nil, err
	}

	updated, err := w.repo.Get(ctx, id)
	if err != nil {
		// Includes a delete racing between the write and the re-read;
		// the caller then sees the record as absent.
		return nil, err
	}

	if w.events != nil {
		event := domain.StatusChangedEvent{
			IncidentID: id,
			OldStatus:  current.Status,
			NewStatus:  updated.Status,
			Remark:     remark,
			OccurredAt: time.Now().UTC(),
		}
		if err := w.events.Enqueue(ctx, event); err != nil {
			// The transition is already durable; a lost notification is
			// logged, not surfaced.
			w.logger.Warn("status event enqueue failed",
				slog.String("op", op),
				slog.String("id", id),
				slog.Any("error", err),
			)
		}
	}

	return updated, nil
}

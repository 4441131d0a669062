package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cadizaccesible/internal/domain"
	"cadizaccesible/pkg/e"

	"github.com/google/uuid"
)

// IncidentService is the façade every caller goes through. It owns the
// creation defaults, delegates persistence to the entity store and status
// changes to the workflow, and exposes live result sets.
type IncidentService struct {
	repo     IncidentRepository
	workflow *StatusWorkflow
	logger   *slog.Logger
}

func NewIncidentService(repo IncidentRepository, workflow *StatusWorkflow, logger *slog.Logger) *IncidentService {
	return &IncidentService{repo: repo, workflow: workflow, logger: logger}
}

// Create persists a new incident with a fresh id, status PENDING, an
// empty admin remark and the current timestamp. Field content is the
// caller's responsibility; only the lat/lng pairing invariant is checked
// here.
func (s *IncidentService) Create(ctx context.Context, creatorEmail string, req domain.CreateIncidentRequest) (*domain.Incident, error) {
	const op = "service.Incident.Create"

	if (req.Lat == nil) != (req.Lng == nil) {
		return nil, fmt.Errorf("%s: lat and lng must be set together: %w", op, e.ErrInvalidInput)
	}

	inc := &domain.Incident{
		ID:             uuid.NewString(),
		CreatorEmail:   creatorEmail,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		AffectedAccess: req.AffectedAccess,
		Severity:       req.Severity,
		Urgent:         req.Urgent,
		Temporary:      req.Temporary,
		Address:        req.Address,
		Lat:            req.Lat,
		Lng:            req.Lng,
		PhotoURI:       req.PhotoURI,
		Status:         domain.StatusPending,
		AdminRemark:    "",
		CreatedAtMs:    time.Now().UnixMilli(),
	}

	if err := s.repo.Upsert(ctx, inc); err != nil {
		return nil, err
	}

	return inc, nil
}

func (s *IncidentService) GetAll(ctx context.Context) ([]*domain.Incident, error) {
	return s.repo.List(ctx)
}

func (s *IncidentService) GetByCreator(ctx context.Context, email string) ([]*domain.Incident, error) {
	return s.repo.ListByCreator(ctx, email)
}

func (s *IncidentService) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes the incident. Deleting an id that no longer exists is a
// success, not an error.
func (s *IncidentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UpdateStatus routes through the workflow so transition rules are
// enforced on every path.
func (s *IncidentService) UpdateStatus(ctx context.Context, id string, status domain.Status, remark string) (*domain.Incident, error) {
	return s.workflow.Apply(ctx, id, status, remark)
}

// WatchAll emits the full incident list immediately and again after every
// write to the incidents table, until ctx is done.
func (s *IncidentService) WatchAll(ctx context.Context) <-chan []*domain.Incident {
	return s.watch(ctx, s.repo.List)
}

// WatchByCreator is the live form of GetByCreator.
func (s *IncidentService) WatchByCreator(ctx context.Context, email string) <-chan []*domain.Incident {
	return s.watch(ctx, func(ctx context.Context) ([]*domain.Incident, error) {
		return s.repo.ListByCreator(ctx, email)
	})
}

func (s *IncidentService) watch(ctx context.Context, query func(context.Context) ([]*domain.Incident, error)) <-chan []*domain.Incident {
	out := make(chan []*domain.Incident, 1)
	changes := s.repo.Watch(ctx)

	go func() {
		defer close(out)

		emit := func() bool {
			res, err := query(ctx)
			if err != nil {
				// Transient storage errors drop this emission, not the
				// subscription; the next table change retries.
				s.logger.Warn("live query failed", slog.Any("error", err))
				return ctx.Err() == nil
			}
			select {
			case out <- res:
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

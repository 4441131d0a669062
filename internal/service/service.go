package service

import (
	"context"
	"time"

	"cadizaccesible/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// IncidentRepository is the entity-store surface the services depend on.
// Implemented by postgres.IncidentStore.
type IncidentRepository interface {
	Upsert(ctx context.Context, inc *domain.Incident) error
	Get(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context) ([]*domain.Incident, error)
	ListByCreator(ctx context.Context, email string) ([]*domain.Incident, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status domain.Status, remark string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	CountBySeverity(ctx context.Context, severity domain.Severity) (int64, error)
	CountUrgent(ctx context.Context) (int64, error)
	GroupByStatus(ctx context.Context) ([]domain.StatusCount, error)
	GroupBySeverity(ctx context.Context) ([]domain.SeverityCount, error)
	Watch(ctx context.Context) <-chan struct{}
}

type AccountRepository interface {
	Insert(ctx context.Context, acc *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindCredentials(ctx context.Context, email, secret string) (*domain.Account, error)
}

// StatusEventSink receives one event per applied transition.
type StatusEventSink interface {
	Enqueue(ctx context.Context, event domain.StatusChangedEvent) error
}

type StatsCacheService interface {
	GetSummary(ctx context.Context) (*domain.StatsSummary, error)
	SetSummary(ctx context.Context, summary *domain.StatsSummary, ttl time.Duration) error
}

type Service struct {
	Incidents *IncidentService
	Workflow  *StatusWorkflow
	Stats     *StatsService
	Accounts  *AccountService
}

func NewService(
	incidents *IncidentService,
	workflow *StatusWorkflow,
	stats *StatsService,
	accounts *AccountService,
) *Service {
	return &Service{
		Incidents: incidents,
		Workflow:  workflow,
		Stats:     stats,
		Accounts:  accounts,
	}
}

package postgres

import (
	"context"

	"cadizaccesible/internal/domain"
)

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

func (p *Postgres) IncidentRepo() IncidentRepository { return p.Incidents }
func (p *Postgres) AccountRepo() AccountRepository   { return p.Accounts }

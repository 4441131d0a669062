package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cadizaccesible/internal/domain"
	"cadizaccesible/internal/storage/watch"
	"cadizaccesible/pkg/e"

	"github.com/jackc/pgx/v5"
)

const incidentColumns = `id, creator_email, title, description, category, affected_access,
	   severity, urgent, temporary, address, lat, lng, photo_uri,
	   status, admin_remark, created_at_ms`

// IncidentStore is the writer-of-record for the incidents table. Every
// successful mutation publishes a table-change event so live queries
// downstream re-emit.
type IncidentStore struct {
	pool     PgxPool
	logger   *slog.Logger
	notifier *watch.Notifier
}

func NewIncidentStore(pool PgxPool, logger *slog.Logger, notifier *watch.Notifier) *IncidentStore {
	return &IncidentStore{pool: pool, logger: logger, notifier: notifier}
}

// Watch subscribes to incidents table changes until ctx is done.
func (p *IncidentStore) Watch(ctx context.Context) <-chan struct{} {
	return p.notifier.Subscribe(ctx)
}

// Upsert inserts the incident, fully replacing any existing row with the
// same id.
func (p *IncidentStore) Upsert(ctx context.Context, inc *domain.Incident) error {
	const op = "postgres.Incident.Upsert"

	const query = `
		INSERT INTO incidents (` + incidentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			creator_email   = EXCLUDED.creator_email,
			title           = EXCLUDED.title,
			description     = EXCLUDED.description,
			category        = EXCLUDED.category,
			affected_access = EXCLUDED.affected_access,
			severity        = EXCLUDED.severity,
			urgent          = EXCLUDED.urgent,
			temporary       = EXCLUDED.temporary,
			address         = EXCLUDED.address,
			lat             = EXCLUDED.lat,
			lng             = EXCLUDED.lng,
			photo_uri       = EXCLUDED.photo_uri,
			status          = EXCLUDED.status,
			admin_remark    = EXCLUDED.admin_remark,
			created_at_ms   = EXCLUDED.created_at_ms
	`

	_, err := p.pool.Exec(ctx, query,
		inc.ID,
		inc.CreatorEmail,
		inc.Title,
		inc.Description,
		inc.Category,
		inc.AffectedAccess,
		string(inc.Severity),
		inc.Urgent,
		inc.Temporary,
		inc.Address,
		inc.Lat,
		inc.Lng,
		inc.PhotoURI,
		string(inc.Status),
		inc.AdminRemark,
		inc.CreatedAtMs,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	p.notifier.Publish()
	return nil
}

// Get returns the incident with the given id, or ErrNotFound.
func (p *IncidentStore) Get(ctx context.Context, id string) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	const query = `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE id = $1
	`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		if errors.Is(err, e.ErrParse) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return nil, e.WrapError(ctx, op, err)
	}

	return inc, nil
}

// List returns all incidents, newest first.
func (p *IncidentStore) List(ctx context.Context) ([]*domain.Incident, error) {
	const op = "postgres.Incident.List"

	const query = `
		SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY created_at_ms DESC
	`

	return p.queryIncidents(ctx, op, query)
}

// ListByCreator returns incidents whose creator email matches exactly,
// newest first. No case folding.
func (p *IncidentStore) ListByCreator(ctx context.Context, email string) ([]*domain.Incident, error) {
	const op = "postgres.Incident.ListByCreator"

	const query = `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE creator_email = $1
		ORDER BY created_at_ms DESC
	`

	return p.queryIncidents(ctx, op, query, email)
}

// Delete removes the incident. Deleting an absent id is a no-op, not an
// error.
func (p *IncidentStore) Delete(ctx context.Context, id string) error {
	const op = "postgres.Incident.Delete"

	const query = `DELETE FROM incidents WHERE id = $1`

	if _, err := p.pool.Exec(ctx, query, id); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return e.WrapError(ctx, op, err)
	}

	p.notifier.Publish()
	return nil
}

// UpdateStatus writes exactly the status and admin_remark columns.
// Silent no-op when the id does not exist.
func (p *IncidentStore) UpdateStatus(ctx context.Context, id string, status domain.Status, remark string) error {
	const op = "postgres.Incident.UpdateStatus"

	const query = `
		UPDATE incidents
		SET status = $2, admin_remark = $3
		WHERE id = $1
	`

	if _, err := p.pool.Exec(ctx, query, id, string(status), remark); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return e.WrapError(ctx, op, err)
	}

	p.notifier.Publish()
	return nil
}

func (p *IncidentStore) CountAll(ctx context.Context) (int64, error) {
	return p.countScalar(ctx, "postgres.Incident.CountAll",
		`SELECT COUNT(*) FROM incidents`)
}

func (p *IncidentStore) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return p.countScalar(ctx, "postgres.Incident.CountByStatus",
		`SELECT COUNT(*) FROM incidents WHERE status = $1`, string(status))
}

func (p *IncidentStore) CountBySeverity(ctx context.Context, severity domain.Severity) (int64, error) {
	return p.countScalar(ctx, "postgres.Incident.CountBySeverity",
		`SELECT COUNT(*) FROM incidents WHERE severity = $1`, string(severity))
}

func (p *IncidentStore) CountUrgent(ctx context.Context) (int64, error) {
	return p.countScalar(ctx, "postgres.Incident.CountUrgent",
		`SELECT COUNT(*) FROM incidents WHERE urgent`)
}

// GroupByStatus returns (status, count) rows for exactly the statuses
// present in storage.
func (p *IncidentStore) GroupByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	const op = "postgres.Incident.GroupByStatus"

	const query = `SELECT status, COUNT(*) AS total FROM incidents GROUP BY status`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var raw string
		var total int64
		if err := rows.Scan(&raw, &total); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		counts = append(counts, domain.StatusCount{Status: status, Total: total})
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}

func (p *IncidentStore) GroupBySeverity(ctx context.Context) ([]domain.SeverityCount, error) {
	const op = "postgres.Incident.GroupBySeverity"

	const query = `SELECT severity, COUNT(*) AS total FROM incidents GROUP BY severity`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var counts []domain.SeverityCount
	for rows.Next() {
		var raw string
		var total int64
		if err := rows.Scan(&raw, &total); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		severity, err := domain.ParseSeverity(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		counts = append(counts, domain.SeverityCount{Severity: severity, Total: total})
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}

func (p *IncidentStore) countScalar(ctx context.Context, op, query string, args ...any) (int64, error) {
	var cnt int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}

func (p *IncidentStore) queryIncidents(ctx context.Context, op, query string, args ...any) ([]*domain.Incident, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var incidents []*domain.Incident
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			if errors.Is(err, e.ErrParse) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return incidents, nil
}

// scanIncident projects one stored row into the domain shape. Stored enum
// values that match no known variant are a hard parse failure.
func scanIncident(row pgx.Row) (*domain.Incident, error) {
	var inc domain.Incident
	var rawSeverity, rawStatus string

	if err := row.Scan(
		&inc.ID,
		&inc.CreatorEmail,
		&inc.Title,
		&inc.Description,
		&inc.Category,
		&inc.AffectedAccess,
		&rawSeverity,
		&inc.Urgent,
		&inc.Temporary,
		&inc.Address,
		&inc.Lat,
		&inc.Lng,
		&inc.PhotoURI,
		&rawStatus,
		&inc.AdminRemark,
		&inc.CreatedAtMs,
	); err != nil {
		return nil, err
	}

	severity, err := domain.ParseSeverity(rawSeverity)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	inc.Severity = severity
	inc.Status = status

	return &inc, nil
}

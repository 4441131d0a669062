package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cadizaccesible/internal/domain"
	"cadizaccesible/pkg/e"

	"github.com/jackc/pgx/v5"
)

// AccountStore persists registered users. Unlike incidents, insertion is
// insert-or-fail: a duplicate email never overwrites the existing row.
type AccountStore struct {
	pool   PgxPool
	logger *slog.Logger
}

func NewAccountStore(pool PgxPool, logger *slog.Logger) *AccountStore {
	return &AccountStore{pool: pool, logger: logger}
}

// Insert adds the account, failing with ErrDuplicateKey when the email is
// already registered.
func (p *AccountStore) Insert(ctx context.Context, acc *domain.Account) error {
	const op = "postgres.Account.Insert"

	const query = `
		INSERT INTO accounts (email, name, secret, role)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := p.pool.Exec(ctx, query, acc.Email, acc.Name, acc.Secret, string(acc.Role)); err != nil {
		wrapped := e.WrapError(ctx, op, err)
		if !errors.Is(wrapped, e.ErrDuplicateKey) {
			p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		}
		return wrapped
	}

	return nil
}

// GetByEmail returns the account with exactly this email, or ErrNotFound.
func (p *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const op = "postgres.Account.GetByEmail"

	const query = `
		SELECT email, name, secret, role
		FROM accounts
		WHERE email = $1
	`

	acc, err := scanAccount(p.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		if errors.Is(err, e.ErrParse) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return acc, nil
}

// FindCredentials returns the account matching both email and secret
// exactly, or ErrNotFound. Used by the authentication path only.
func (p *AccountStore) FindCredentials(ctx context.Context, email, secret string) (*domain.Account, error) {
	const op = "postgres.Account.FindCredentials"

	const query = `
		SELECT email, name, secret, role
		FROM accounts
		WHERE email = $1 AND secret = $2
	`

	acc, err := scanAccount(p.pool.QueryRow(ctx, query, email, secret))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		if errors.Is(err, e.ErrParse) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return acc, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	var rawRole string

	if err := row.Scan(&acc.Email, &acc.Name, &acc.Secret, &rawRole); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}
	acc.Role = role

	return &acc, nil
}

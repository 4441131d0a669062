package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"cadizaccesible/internal/domain"
	"cadizaccesible/pkg/e"
)

func newAccountStore(t *testing.T) (*AccountStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAccountStore(mock, logger), mock
}

func TestAccountStore_Insert_OK_and_Duplicate(t *testing.T) {
	store, mock := newAccountStore(t)
	defer mock.Close()
	ctx := context.Background()

	acc := &domain.Account{
		Email:  "a@a.com",
		Name:   "Ana",
		Secret: "pw",
		Role:   domain.RoleCitizen,
	}

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(acc.Email, acc.Name, acc.Secret, string(acc.Role)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, store.Insert(ctx, acc))

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(acc.Email, acc.Name, acc.Secret, string(acc.Role)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := store.Insert(ctx, acc)
	require.ErrorIs(t, err, e.ErrDuplicateKey)
}

func TestAccountStore_FindCredentials_ExactMatchOnly(t *testing.T) {
	store, mock := newAccountStore(t)
	defer mock.Close()
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"email", "name", "secret", "role"}).
		AddRow("a@a.com", "Ana", "pw", "ADMIN")
	mock.ExpectQuery("SELECT email, name, secret, role").
		WithArgs("a@a.com", "pw").
		WillReturnRows(rows)

	acc, err := store.FindCredentials(ctx, "a@a.com", "pw")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, acc.Role)

	mock.ExpectQuery("SELECT email, name, secret, role").
		WithArgs("a@a.com", "wrong").
		WillReturnError(pgx.ErrNoRows)

	_, err = store.FindCredentials(ctx, "a@a.com", "wrong")
	require.ErrorIs(t, err, e.ErrNotFound)
}

func TestAccountStore_GetByEmail_CorruptRoleIsParseFailure(t *testing.T) {
	store, mock := newAccountStore(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"email", "name", "secret", "role"}).
		AddRow("a@a.com", "Ana", "pw", "OVERLORD")
	mock.ExpectQuery("SELECT email, name, secret, role").
		WithArgs("a@a.com").
		WillReturnRows(rows)

	_, err := store.GetByEmail(context.Background(), "a@a.com")
	require.ErrorIs(t, err, e.ErrParse)
}

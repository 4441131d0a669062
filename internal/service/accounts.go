package service

import (
	"context"
	"log/slog"

	"cadizaccesible/internal/domain"
)

// AccountService handles registration and credential checks. Accounts
// are write-once; there is no profile editing or password rotation.
type AccountService struct {
	repo   AccountRepository
	logger *slog.Logger
}

func NewAccountService(repo AccountRepository, logger *slog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// Register creates the account. A duplicate email fails with
// ErrDuplicateKey and leaves the original row untouched. An empty role
// registers a citizen.
func (s *AccountService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Account, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleCitizen
	}

	acc := &domain.Account{
		Email:  req.Email,
		Name:   req.Name,
		Secret: req.Secret,
		Role:   role,
	}

	if err := s.repo.Insert(ctx, acc); err != nil {
		return nil, err
	}

	s.logger.Info("account registered", slog.String("email", acc.Email), slog.String("role", string(acc.Role)))
	return acc, nil
}

// Login returns the account matching both email and secret exactly, or
// ErrNotFound when there is no match.
func (s *AccountService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Account, error) {
	return s.repo.FindCredentials(ctx, req.Email, req.Secret)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"

	"cadizaccesible/internal/domain"
	mock_service "cadizaccesible/internal/service/mocks"
	"cadizaccesible/pkg/e"
)

func TestAccountService_Register_DefaultsToCitizen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccountRepository(ctrl)
	svc := NewAccountService(repo, discardLogger())

	var stored *domain.Account
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, acc *domain.Account) error {
			stored = acc
			return nil
		})

	got, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:   "Ana",
		Email:  "a@a.com",
		Secret: "s3cret",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got.Role != domain.RoleCitizen {
		t.Fatalf("empty role must register a citizen, got %s", got.Role)
	}
	if stored == nil || stored.Email != "a@a.com" {
		t.Fatalf("account was not persisted: %+v", stored)
	}
}

func TestAccountService_Register_KeepsExplicitRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccountRepository(ctrl)
	svc := NewAccountService(repo, discardLogger())

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:   "Root",
		Email:  "admin@a.com",
		Secret: "s3cret",
		Role:   domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got.Role != domain.RoleAdmin {
		t.Fatalf("explicit role must survive, got %s", got.Role)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccountRepository(ctrl)
	svc := NewAccountService(repo, discardLogger())

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert: %w", e.ErrDuplicateKey))

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:   "Eve",
		Email:  "a@a.com",
		Secret: "other",
	})
	if !errors.Is(err, e.ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}
}

func TestAccountService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccountRepository(ctrl)
	svc := NewAccountService(repo, discardLogger())

	acc := &domain.Account{Email: "a@a.com", Name: "Ana", Role: domain.RoleCitizen}
	repo.EXPECT().FindCredentials(gomock.Any(), "a@a.com", "s3cret").Return(acc, nil)
	repo.EXPECT().FindCredentials(gomock.Any(), "a@a.com", "wrong").Return(nil, fmt.Errorf("no match: %w", e.ErrNotFound))

	got, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@a.com", Secret: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.Email != "a@a.com" {
		t.Fatalf("wrong account: %+v", got)
	}

	_, err = svc.Login(context.Background(), domain.LoginRequest{Email: "a@a.com", Secret: "wrong"})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("wrong secret must be ErrNotFound, got %v", err)
	}
}

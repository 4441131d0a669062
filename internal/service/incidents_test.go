package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"

	"cadizaccesible/internal/domain"
	mock_service "cadizaccesible/internal/service/mocks"
	"cadizaccesible/pkg/e"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIncidentService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := NewIncidentService(repo, nil, discardLogger())

	var stored *domain.Incident
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inc *domain.Incident) error {
			stored = inc
			return nil
		})

	got, err := svc.Create(context.Background(), "a@a.com", domain.CreateIncidentRequest{
		Title:    "broken ramp",
		Category: "mobility",
		Severity: domain.SeverityHigh,
		Urgent:   true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stored == nil || got != stored {
		t.Fatalf("created incident was not the one persisted")
	}
	if got.ID == "" {
		t.Fatalf("id must be assigned")
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("new incident must start PENDING, got %s", got.Status)
	}
	if got.AdminRemark != "" {
		t.Fatalf("new incident must have empty remark, got %q", got.AdminRemark)
	}
	if got.CreatedAtMs == 0 {
		t.Fatalf("timestamp must be set")
	}
	if got.CreatorEmail != "a@a.com" {
		t.Fatalf("creator must come from the session, got %q", got.CreatorEmail)
	}
}

func TestIncidentService_Create_UniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := NewIncidentService(repo, nil, discardLogger())

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	req := domain.CreateIncidentRequest{Title: "t", Category: "c", Severity: domain.SeverityLow}
	first, err := svc.Create(context.Background(), "a@a.com", req)
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	second, err := svc.Create(context.Background(), "a@a.com", req)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("ids must be unique, both were %q", first.ID)
	}
}

func TestIncidentService_Create_RejectsHalfCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := NewIncidentService(repo, nil, discardLogger())

	lat := 36.5
	_, err := svc.Create(context.Background(), "a@a.com", domain.CreateIncidentRequest{
		Title:    "t",
		Category: "c",
		Severity: domain.SeverityLow,
		Lat:      &lat,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for lat without lng, got %v", err)
	}
}

func TestIncidentService_Delete_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := NewIncidentService(repo, nil, discardLogger())

	repo.EXPECT().Delete(gomock.Any(), "gone").Return(nil)

	if err := svc.Delete(context.Background(), "gone"); err != nil {
		t.Fatalf("Delete of an absent id must succeed, got %v", err)
	}
}

func TestIncidentService_WatchAll_EmitsOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := NewIncidentService(repo, nil, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 1)
	repo.EXPECT().Watch(gomock.Any()).Return((<-chan struct{})(changes))

	first := []*domain.Incident{{ID: "1"}}
	second := []*domain.Incident{{ID: "1"}, {ID: "2"}}
	gomock.InOrder(
		repo.EXPECT().List(gomock.Any()).Return(first, nil),
		repo.EXPECT().List(gomock.Any()).Return(second, nil),
	)

	out := svc.WatchAll(ctx)

	got := <-out
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("initial emission wrong: %+v", got)
	}

	changes <- struct{}{}
	got = <-out
	if len(got) != 2 {
		t.Fatalf("want re-emission after change, got %+v", got)
	}

	cancel()
	if _, ok := <-out; ok {
		t.Fatalf("channel must close after cancel")
	}
}

func TestIncidentService_WatchAll_SurvivesQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := NewIncidentService(repo, nil, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 1)
	repo.EXPECT().Watch(gomock.Any()).Return((<-chan struct{})(changes))

	gomock.InOrder(
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("storage down")),
		repo.EXPECT().List(gomock.Any()).Return([]*domain.Incident{{ID: "1"}}, nil),
	)

	out := svc.WatchAll(ctx)

	// The failed initial query drops the emission, not the subscription.
	changes <- struct{}{}
	got := <-out
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("want recovery emission, got %+v", got)
	}
}

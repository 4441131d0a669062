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

func TestStatusWorkflow_Apply_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	sink := mock_service.NewMockStatusEventSink(ctrl)
	wf := NewStatusWorkflow(repo, sink, discardLogger())

	before := &domain.Incident{ID: "1", Status: domain.StatusPending}
	after := &domain.Incident{ID: "1", Status: domain.StatusResolved, AdminRemark: "ramp fixed"}

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), "1").Return(before, nil),
		repo.EXPECT().UpdateStatus(gomock.Any(), "1", domain.StatusResolved, "ramp fixed").Return(nil),
		repo.EXPECT().Get(gomock.Any(), "1").Return(after, nil),
	)

	var event domain.StatusChangedEvent
	sink.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.StatusChangedEvent) error {
			event = ev
			return nil
		})

	got, err := wf.Apply(context.Background(), "1", domain.StatusResolved, "ramp fixed")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Status != domain.StatusResolved || got.AdminRemark != "ramp fixed" {
		t.Fatalf("want the re-read record, got %+v", got)
	}
	if event.IncidentID != "1" || event.OldStatus != domain.StatusPending || event.NewStatus != domain.StatusResolved {
		t.Fatalf("event wrong: %+v", event)
	}
}

func TestStatusWorkflow_Apply_AbsentIDWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	wf := NewStatusWorkflow(repo, nil, discardLogger())

	repo.EXPECT().Get(gomock.Any(), "X").Return(nil, fmt.Errorf("no row: %w", e.ErrNotFound))

	_, err := wf.Apply(context.Background(), "X", domain.StatusAccepted, "")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestStatusWorkflow_Apply_RacingDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	sink := mock_service.NewMockStatusEventSink(ctrl)
	wf := NewStatusWorkflow(repo, sink, discardLogger())

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), "1").Return(&domain.Incident{ID: "1", Status: domain.StatusPending}, nil),
		repo.EXPECT().UpdateStatus(gomock.Any(), "1", domain.StatusAccepted, "").Return(nil),
		repo.EXPECT().Get(gomock.Any(), "1").Return(nil, fmt.Errorf("no row: %w", e.ErrNotFound)),
	)

	_, err := wf.Apply(context.Background(), "1", domain.StatusAccepted, "")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("want ErrNotFound when a delete races the update, got %v", err)
	}
}

func TestStatusWorkflow_Apply_EnqueueFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	sink := mock_service.NewMockStatusEventSink(ctrl)
	wf := NewStatusWorkflow(repo, sink, discardLogger())

	after := &domain.Incident{ID: "1", Status: domain.StatusRejected, AdminRemark: "duplicate"}
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), "1").Return(&domain.Incident{ID: "1", Status: domain.StatusPending}, nil),
		repo.EXPECT().UpdateStatus(gomock.Any(), "1", domain.StatusRejected, "duplicate").Return(nil),
		repo.EXPECT().Get(gomock.Any(), "1").Return(after, nil),
	)
	sink.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := wf.Apply(context.Background(), "1", domain.StatusRejected, "duplicate")
	if err != nil {
		t.Fatalf("a lost notification must not fail the transition: %v", err)
	}
	if got.Status != domain.StatusRejected {
		t.Fatalf("want updated record, got %+v", got)
	}
}

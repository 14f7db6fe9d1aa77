package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"activityBoardWs/internal/board/application/port"
	"activityBoardWs/internal/board/domain"
)

func newUnregisterFixture(backend *fakeBackend) (*UnregisterUseCase, *recorderBroadcaster) {
	rec := &recorderBroadcaster{}
	refresh := NewRefreshUseCase(backend, NewBroadcastUseCase(rec))
	return NewUnregisterUseCase(backend, refresh), rec
}

func TestUnregisterRequiresConfirmation(t *testing.T) {
	backend := &fakeBackend{}
	uc, _ := newUnregisterFixture(backend)

	out, err := uc.Execute(context.Background(), UnregisterInput{Email: "a@b.com", Activity: "Chess Club"})
	if !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected confirmation error, got %v", err)
	}
	if !strings.Contains(out.Prompt, "a@b.com") || !strings.Contains(out.Prompt, "Chess Club") {
		t.Fatalf("prompt must name both email and activity: %q", out.Prompt)
	}
	if backend.lastActivity != "" {
		t.Fatalf("unconfirmed request must not reach the backend")
	}
}

func TestUnregisterConfirmedSuccessRefreshesSilently(t *testing.T) {
	backend := &fakeBackend{catalogs: []domain.ActivityCatalog{chessCatalog()}}
	uc, rec := newUnregisterFixture(backend)

	if _, err := uc.Execute(context.Background(), UnregisterInput{Email: "a@b.com", Activity: "Chess Club", Confirmed: true}); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}
	if backend.fetchCount() != 1 {
		t.Fatalf("confirmed removal must trigger a refresh, got %d fetches", backend.fetchCount())
	}
	if rec.countTopic(domain.NoticeTopic()) != 0 {
		t.Fatalf("successful removal must not publish a notice, got %v", rec.topics())
	}
}

func TestUnregisterFailureReportsOnlyToCaller(t *testing.T) {
	backend := &fakeBackend{unregisterErr: &port.RejectionError{Status: 400, Detail: "Student is not signed up for this activity"}}
	uc, rec := newUnregisterFixture(backend)

	_, err := uc.Execute(context.Background(), UnregisterInput{Email: "a@b.com", Activity: "Chess Club", Confirmed: true})
	rejection, ok := port.AsRejection(err)
	if !ok {
		t.Fatalf("expected rejection error, got %v", err)
	}
	if rejection.Detail != "Student is not signed up for this activity" {
		t.Fatalf("unexpected detail: %q", rejection.Detail)
	}
	if backend.fetchCount() != 0 {
		t.Fatalf("failed removal must not trigger a refresh")
	}
	if len(rec.topics()) != 0 {
		t.Fatalf("failed removal must not broadcast, got %v", rec.topics())
	}
}

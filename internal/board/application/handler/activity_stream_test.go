package handler

import (
	"context"
	"sync"
	"testing"

	"activityBoardWs/internal/board/application/usecase"
	"activityBoardWs/internal/board/domain"
)

type recordingBackend struct {
	mu      sync.Mutex
	fetches int
}

func (b *recordingBackend) FetchCatalog(context.Context) (domain.ActivityCatalog, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fetches++
	return domain.ActivityCatalog{}, nil
}

func (b *recordingBackend) SignUp(context.Context, string, string) (string, error) { return "", nil }

func (b *recordingBackend) Unregister(context.Context, string, string) error { return nil }

func (b *recordingBackend) fetchCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fetches
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []*domain.Message
}

func (r *recordingBroadcaster) Broadcast(_ context.Context, msg *domain.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *recordingBroadcaster) topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m.Topic)
	}
	return out
}

func TestActivityStreamForwardsEventAndRefreshes(t *testing.T) {
	backend := &recordingBackend{}
	sink := &recordingBroadcaster{}
	broadcastUC := usecase.NewBroadcastUseCase(sink)
	refreshUC := usecase.NewRefreshUseCase(backend, broadcastUC)

	h := NewActivityStreamHandler("school-activities", []string{"created", "updated", "deleted"}, broadcastUC, refreshUC)

	msg := &domain.Message{Entity: "activity", Action: "updated"}
	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if backend.fetchCount() != 1 {
		t.Fatalf("expected one refresh, got %d", backend.fetchCount())
	}
	topics := sink.topics()
	if len(topics) != 2 {
		t.Fatalf("expected forwarded event plus snapshot, got %v", topics)
	}
	if topics[0] != "activity.updated" {
		t.Fatalf("event topic not derived from entity and action: %q", topics[0])
	}
	if topics[1] != domain.SnapshotTopic() {
		t.Fatalf("refresh did not broadcast a snapshot: %q", topics[1])
	}
}

func TestActivityStreamIgnoresUnlistedActions(t *testing.T) {
	backend := &recordingBackend{}
	sink := &recordingBroadcaster{}
	broadcastUC := usecase.NewBroadcastUseCase(sink)
	refreshUC := usecase.NewRefreshUseCase(backend, broadcastUC)

	h := NewActivityStreamHandler("school-activities", []string{"created"}, broadcastUC, refreshUC)

	if err := h.Handle(context.Background(), &domain.Message{Entity: "activity", Action: "pinged"}); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if backend.fetchCount() != 0 {
		t.Fatalf("filtered action must not refresh")
	}
	if len(sink.topics()) != 0 {
		t.Fatalf("filtered action must not broadcast: %v", sink.topics())
	}
}

func TestActivityStreamEmptyFilterAllowsEverything(t *testing.T) {
	backend := &recordingBackend{}
	sink := &recordingBroadcaster{}
	broadcastUC := usecase.NewBroadcastUseCase(sink)

	h := NewActivityStreamHandler("school-activities", nil, broadcastUC, usecase.NewRefreshUseCase(backend, broadcastUC))

	if err := h.Handle(context.Background(), &domain.Message{Topic: "activity.raw", Action: "raw"}); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if backend.fetchCount() != 1 {
		t.Fatalf("expected refresh for unfiltered action")
	}
}

func TestActivityStreamTopic(t *testing.T) {
	h := NewActivityStreamHandler("school-activities", nil, usecase.NewBroadcastUseCase(&recordingBroadcaster{}), nil)
	if h.Topic() != "school-activities" {
		t.Fatalf("unexpected topic: %q", h.Topic())
	}
}

package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"activityBoardWs/internal/board/domain"
)

// NoticeCenter owns the single transient notice region. Each published notice
// arms an auto-hide timer; publishing again stops the pending timer, so the
// hide scheduled for an older notice can never fire against a newer one. The
// clear is double-checked against the notice ID for the case where the timer
// already fired concurrently.
type NoticeCenter struct {
	broadcaster *BroadcastUseCase
	ttl         time.Duration

	mu      sync.Mutex
	seq     uint64
	current *domain.Notice
	timer   *time.Timer
}

func NewNoticeCenter(ttl time.Duration, broadcaster *BroadcastUseCase) *NoticeCenter {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &NoticeCenter{broadcaster: broadcaster, ttl: ttl}
}

// Publish shows a notice and broadcasts it to every board client.
func (n *NoticeCenter) Publish(ctx context.Context, kind domain.NoticeKind, text string, resetForm bool) domain.Notice {
	n.mu.Lock()
	n.seq++
	notice := domain.Notice{ID: n.seq, Kind: kind, Text: text, ResetForm: resetForm}
	n.current = &notice
	if n.timer != nil {
		n.timer.Stop()
	}
	id := notice.ID
	n.timer = time.AfterFunc(n.ttl, func() { n.clear(id) })
	n.mu.Unlock()

	slog.Debug("notice published", slog.Uint64("id", notice.ID), slog.String("kind", string(kind)))
	n.broadcaster.Execute(ctx, domain.BuildNoticeMessage(notice, time.Now()))
	return notice
}

// Current returns the visible notice, or nil when the region is hidden.
func (n *NoticeCenter) Current() *domain.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	notice := *n.current
	return &notice
}

func (n *NoticeCenter) clear(id uint64) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.timer = nil
	n.mu.Unlock()

	slog.Debug("notice cleared", slog.Uint64("id", id))
	n.broadcaster.Execute(context.Background(), domain.BuildNoticeClearedMessage(id, time.Now()))
}

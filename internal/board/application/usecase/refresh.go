package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"activityBoardWs/internal/board/application/port"
	"activityBoardWs/internal/board/domain"
)

// RefreshUseCase fetches the full activity catalog and replaces the rendered
// state. Overlapping refreshes are allowed; each fetch attempt takes a version
// before issuing the request, and a response that resolves after a newer one
// has already been rendered is discarded instead of overwriting it.
type RefreshUseCase struct {
	backend     port.ActivitiesBackend
	broadcaster *BroadcastUseCase

	seq uint64

	mu       sync.RWMutex
	rendered uint64
	current  *domain.CatalogSnapshot
}

func NewRefreshUseCase(backend port.ActivitiesBackend, broadcaster *BroadcastUseCase) *RefreshUseCase {
	return &RefreshUseCase{backend: backend, broadcaster: broadcaster}
}

// Execute performs one catalog fetch. On success the snapshot fully replaces
// the previous one and is broadcast to every board client. On failure the
// board keeps its last snapshot, a static failure message is broadcast, and
// the next scheduled poll is the only retry.
func (uc *RefreshUseCase) Execute(ctx context.Context) (*domain.CatalogSnapshot, error) {
	version := atomic.AddUint64(&uc.seq, 1)
	slog.Debug("catalog refresh start", slog.Uint64("version", version))

	catalog, err := uc.backend.FetchCatalog(ctx)
	if err != nil {
		slog.Error("catalog refresh failed", slog.Uint64("version", version), slog.Any("error", err))
		uc.broadcaster.Execute(ctx, domain.BuildCatalogErrorMessage("", time.Now()))
		return nil, err
	}

	snapshot := &domain.CatalogSnapshot{Version: version, Catalog: catalog, FetchedAt: time.Now().UTC()}

	uc.mu.Lock()
	if version < uc.rendered {
		stale := uc.current
		uc.mu.Unlock()
		slog.Warn("catalog refresh stale response discarded", slog.Uint64("version", version), slog.Uint64("rendered", uc.rendered))
		return stale, nil
	}
	uc.rendered = version
	uc.current = snapshot
	uc.mu.Unlock()

	slog.Info("catalog refreshed", slog.Uint64("version", version), slog.Int("activities", len(catalog)))
	uc.broadcaster.Execute(ctx, domain.BuildSnapshotMessage(snapshot, time.Now()))
	return snapshot, nil
}

// Current returns the last rendered snapshot, or nil before the first
// successful fetch.
func (uc *RefreshUseCase) Current() *domain.CatalogSnapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Run is the polling driver: one immediate refresh, then one per interval
// until ctx is cancelled. No individual failure stops the loop.
func (uc *RefreshUseCase) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if _, err := uc.Execute(ctx); err != nil {
		slog.Warn("initial catalog refresh failed", slog.Any("error", err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("catalog poller stopped")
			return
		case <-ticker.C:
			if _, err := uc.Execute(ctx); err != nil {
				slog.Warn("scheduled catalog refresh failed", slog.Any("error", err))
			}
		}
	}
}

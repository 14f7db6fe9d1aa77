package handler

import (
	"context"
	"log/slog"
	"strings"

	"activityBoardWs/internal/board/application/port"
	"activityBoardWs/internal/board/application/usecase"
	"activityBoardWs/internal/board/domain"
)

// ActivityStreamHandler reacts to broker events announcing roster changes: the
// event is forwarded to connected boards and an immediate catalog refresh is
// triggered, on top of the fixed-interval poll.
type ActivityStreamHandler struct {
	brokerTopic    string
	allowedActions map[string]struct{}
	broadcastUC    *usecase.BroadcastUseCase
	refreshUC      *usecase.RefreshUseCase
}

func NewActivityStreamHandler(brokerTopic string, allowedActions []string, broadcastUC *usecase.BroadcastUseCase, refreshUC *usecase.RefreshUseCase) *ActivityStreamHandler {
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &ActivityStreamHandler{
		brokerTopic:    brokerTopic,
		allowedActions: actionSet,
		broadcastUC:    broadcastUC,
		refreshUC:      refreshUC,
	}
}

func (h *ActivityStreamHandler) Topic() string { return h.brokerTopic }

func (h *ActivityStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if len(h.allowedActions) > 0 {
		if _, ok := h.allowedActions[strings.ToLower(msg.Action)]; !ok {
			return nil
		}
	}
	// Dispatch arrives keyed on the broker topic; boards subscribe to
	// entity.action topics instead.
	if msg.Entity != "" && msg.Action != "" {
		msg.Topic = msg.Entity + "." + msg.Action
	}
	h.broadcastUC.Execute(ctx, msg)

	if h.refreshUC == nil {
		return nil
	}
	slog.Info("activity-stream refresh", slog.String("topic", h.brokerTopic), slog.String("action", msg.Action))
	if _, err := h.refreshUC.Execute(ctx); err != nil {
		slog.Warn("activity-stream refresh failed", slog.String("topic", h.brokerTopic), slog.Any("error", err))
	}
	return nil
}

var _ port.TopicHandler = (*ActivityStreamHandler)(nil)

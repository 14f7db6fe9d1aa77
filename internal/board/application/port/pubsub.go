package port

import (
	"context"

	"activityBoardWs/internal/board/domain"
)

// Broadcaster fans a message out to every subscribed websocket client.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler reacts to broker events for a single topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}

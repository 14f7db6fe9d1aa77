package domain

import (
	"strconv"
	"strings"
	"time"
)

// Message is the envelope pushed to websocket clients and decoded from broker
// events.
type Message struct {
	Topic     string            `json:"topic"`
	Entity    string            `json:"entity"`
	Action    string            `json:"action"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Data      interface{}       `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
}

// BuildSnapshotMessage composes the full-catalog message broadcast after each
// successful refresh.
func BuildSnapshotMessage(snapshot *CatalogSnapshot, at time.Time) *Message {
	if snapshot == nil {
		return nil
	}
	return &Message{
		Topic:  SnapshotTopic(),
		Entity: ActivitiesEntity,
		Action: ActionSnapshot,
		Metadata: map[string]string{
			"version": formatVersion(snapshot.Version),
		},
		Data:      snapshot,
		Timestamp: at.UTC(),
	}
}

// BuildCatalogErrorMessage composes the static failure payload shown when the
// catalog cannot be loaded or parsed.
func BuildCatalogErrorMessage(reason string, at time.Time) *Message {
	detail := strings.TrimSpace(reason)
	if detail == "" {
		detail = "Failed to load activities. Please try again later."
	}
	return &Message{
		Topic:     CatalogErrorTopic(),
		Entity:    ActivitiesEntity,
		Action:    ActionError,
		Data:      map[string]string{"error": detail},
		Timestamp: at.UTC(),
	}
}

// BuildNoticeMessage composes the transient notice broadcast for sign-up
// feedback.
func BuildNoticeMessage(notice Notice, at time.Time) *Message {
	return &Message{
		Topic:  NoticeTopic(),
		Entity: BoardEntity,
		Action: ActionNotice,
		Metadata: map[string]string{
			"kind": string(notice.Kind),
		},
		Data:      notice,
		Timestamp: at.UTC(),
	}
}

// BuildNoticeClearedMessage announces that the notice identified by id expired.
func BuildNoticeClearedMessage(id uint64, at time.Time) *Message {
	return &Message{
		Topic:     NoticeClearedTopic(),
		Entity:    BoardEntity,
		Action:    ActionNoticeCleared,
		Metadata:  map[string]string{"noticeId": formatVersion(id)},
		Timestamp: at.UTC(),
	}
}

func formatVersion(v uint64) string {
	return strconv.FormatUint(v, 10)
}

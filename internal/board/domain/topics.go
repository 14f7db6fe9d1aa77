package domain

import "strings"

const (
	ActivitiesEntity = "activities"
	BoardEntity      = "board"
	SystemEntity     = "system"

	TopicSystemConnected = SystemEntity + ".connected"
	TopicSystemPong      = SystemEntity + ".pong"

	ActionConnected     = "connected"
	ActionPong          = "pong"
	ActionSnapshot      = "snapshot"
	ActionError         = "error"
	ActionNotice        = "notice"
	ActionNoticeCleared = "notice_cleared"
)

// SnapshotTopic returns the topic carrying full catalog snapshots.
func SnapshotTopic() string { return buildTopic(ActivitiesEntity, ActionSnapshot) }

// CatalogErrorTopic returns the topic carrying catalog fetch failures.
func CatalogErrorTopic() string { return buildTopic(ActivitiesEntity, ActionError) }

// NoticeTopic returns the topic carrying transient board notices.
func NoticeTopic() string { return buildTopic(BoardEntity, ActionNotice) }

// NoticeClearedTopic returns the topic announcing an expired notice.
func NoticeClearedTopic() string { return buildTopic(BoardEntity, ActionNoticeCleared) }

func buildTopic(entity, action string) string {
	cleanEntity := strings.TrimSpace(entity)
	cleanAction := strings.TrimSpace(action)
	if cleanEntity == "" || cleanAction == "" {
		return ""
	}
	return cleanEntity + "." + cleanAction
}

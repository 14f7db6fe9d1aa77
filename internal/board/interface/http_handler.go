package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"activityBoardWs/internal/board/application/usecase"
	"activityBoardWs/internal/board/domain"
	"activityBoardWs/internal/board/infrastructure"
	"activityBoardWs/internal/shared/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewBoardWebsocketHandler exposes /ws/board. When a JWT secret is configured
// the token is required (path param, query, or Authorization header);
// otherwise connections are anonymous with a generated session ID. On connect
// the viewer receives system.connected, the current catalog snapshot, and the
// visible notice, then lives off broadcasts.
func NewBoardWebsocketHandler(
	hub *infrastructure.Hub,
	validator *auth.JWTValidator,
	refreshUC *usecase.RefreshUseCase,
	notices *usecase.NoticeCenter,
	sendBuffer int,
) echo.HandlerFunc {
	if sendBuffer <= 0 {
		sendBuffer = 8
	}

	return func(c echo.Context) error {
		peerIP := c.RealIP()
		token := strings.TrimSpace(c.Param("token"))
		if token == "" {
			token = auth.ExtractToken(c.Request(), "token")
		}

		userID := "viewer"
		sessionID := uuid.NewString()
		if validator != nil && validator.Enabled() {
			claims, err := validator.Validate(token)
			if err != nil {
				status := http.StatusUnauthorized
				message := "invalid token"
				if errors.Is(err, auth.ErrMissingToken) {
					status = http.StatusBadRequest
					message = "missing token"
				}
				slog.Warn("board ws auth failed", slog.String("ip", peerIP), slog.Any("error", err))
				return echo.NewHTTPError(status, message)
			}
			userID = claims.RegisteredClaims.Subject
			sessionID = claims.SessionID
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("board ws upgrade failed", slog.String("ip", peerIP), slog.Any("error", err))
			return err
		}
		slog.Info("board ws connected", slog.String("userId", userID), slog.String("sessionId", sessionID), slog.String("ip", peerIP))

		client := infrastructure.NewClient(hub, conn, userID, sessionID, sendBuffer, newRefreshCommandHandler(refreshUC))
		hub.AttachClient(client, boardTopics())

		go client.WritePump()
		go client.ReadPump()

		connected := &domain.Message{
			Topic:  domain.TopicSystemConnected,
			Entity: domain.SystemEntity,
			Action: domain.ActionConnected,
			Metadata: map[string]string{
				"userId":    userID,
				"sessionId": sessionID,
			},
			Data: map[string]interface{}{
				"topics": boardTopics(),
			},
			Timestamp: time.Now().UTC(),
		}
		client.SendDomainMessage(connected)

		if snapshot := refreshUC.Current(); snapshot != nil {
			client.SendDomainMessage(domain.BuildSnapshotMessage(snapshot, time.Now()))
		}
		if notice := notices.Current(); notice != nil {
			client.SendDomainMessage(domain.BuildNoticeMessage(*notice, time.Now()))
		}
		return nil
	}
}

// newRefreshCommandHandler lets a viewer request an immediate catalog refresh
// over the socket; the result arrives through the regular snapshot broadcast.
func newRefreshCommandHandler(refreshUC *usecase.RefreshUseCase) infrastructure.CommandHandler {
	return func(ctx context.Context, client *infrastructure.Client, cmd infrastructure.Command) {
		action := strings.ToLower(strings.TrimSpace(cmd.Action))
		if action != "refresh" {
			slog.Debug("board ws unknown action", slog.String("action", cmd.Action))
			return
		}
		if _, err := refreshUC.Execute(ctx); err != nil {
			slog.Warn("board ws refresh command failed", slog.Any("error", err))
		}
	}
}

func boardTopics() []string {
	return []string{
		domain.SnapshotTopic(),
		domain.CatalogErrorTopic(),
		domain.NoticeTopic(),
		domain.NoticeClearedTopic(),
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"activityBoardWs/internal/board/application/port"
)

// ErrConfirmationRequired is returned when an unregister request arrives
// without the viewer having confirmed the removal.
var ErrConfirmationRequired = errors.New("unregister confirmation required")

type UnregisterInput struct {
	Email     string
	Activity  string
	Confirmed bool
}

type UnregisterOutput struct {
	// Prompt names both the email and the activity; it is only set when
	// confirmation is still pending.
	Prompt string
}

// UnregisterUseCase removes a participant after explicit confirmation. It
// deliberately reports failures only to the initiating request, never as a
// board notice, and a failed removal triggers no refresh.
type UnregisterUseCase struct {
	backend port.ActivitiesBackend
	refresh *RefreshUseCase
}

func NewUnregisterUseCase(backend port.ActivitiesBackend, refresh *RefreshUseCase) *UnregisterUseCase {
	return &UnregisterUseCase{backend: backend, refresh: refresh}
}

func (uc *UnregisterUseCase) Execute(ctx context.Context, input UnregisterInput) (*UnregisterOutput, error) {
	email := strings.TrimSpace(input.Email)
	activity := strings.TrimSpace(input.Activity)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if activity == "" {
		return nil, ErrMissingActivity
	}

	if !input.Confirmed {
		prompt := fmt.Sprintf("Remove %s from %s?", email, activity)
		return &UnregisterOutput{Prompt: prompt}, ErrConfirmationRequired
	}

	slog.Info("unregister start", slog.String("activity", activity), slog.String("email", email))

	if err := uc.backend.Unregister(ctx, activity, email); err != nil {
		slog.Warn("unregister failed", slog.String("activity", activity), slog.String("email", email), slog.Any("error", err))
		return nil, err
	}

	slog.Info("unregister succeeded", slog.String("activity", activity), slog.String("email", email))
	if _, err := uc.refresh.Execute(ctx); err != nil {
		slog.Warn("post-unregister refresh failed", slog.Any("error", err))
	}
	return &UnregisterOutput{}, nil
}

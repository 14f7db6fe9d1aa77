package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"activityBoardWs/internal/board/application/port"
	"activityBoardWs/internal/board/domain"
)

var (
	ErrMissingEmail    = errors.New("missing email")
	ErrMissingActivity = errors.New("missing activity name")
)

const genericSignupFailure = "Failed to sign up. Please try again."

type SignUpInput struct {
	Email    string
	Activity string
}

type SignUpOutput struct {
	Notice domain.Notice
}

// SignUpUseCase forwards a sign-up to the backend and turns the outcome into a
// transient notice. Success also triggers a catalog refresh so every board
// shows the new roster.
type SignUpUseCase struct {
	backend port.ActivitiesBackend
	notices *NoticeCenter
	refresh *RefreshUseCase
}

func NewSignUpUseCase(backend port.ActivitiesBackend, notices *NoticeCenter, refresh *RefreshUseCase) *SignUpUseCase {
	return &SignUpUseCase{backend: backend, notices: notices, refresh: refresh}
}

func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {
	email := strings.TrimSpace(input.Email)
	activity := strings.TrimSpace(input.Activity)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if activity == "" {
		return nil, ErrMissingActivity
	}

	slog.Info("signup start", slog.String("activity", activity), slog.String("email", email))

	message, err := uc.backend.SignUp(ctx, activity, email)
	if rejection, ok := port.AsRejection(err); ok {
		notice := uc.notices.Publish(ctx, domain.NoticeError, rejection.UserDetail(genericSignupFailure), false)
		slog.Warn("signup rejected", slog.String("activity", activity), slog.String("email", email), slog.Int("status", rejection.Status))
		return &SignUpOutput{Notice: notice}, err
	}
	if err != nil {
		notice := uc.notices.Publish(ctx, domain.NoticeError, genericSignupFailure, false)
		slog.Error("signup request failed", slog.String("activity", activity), slog.String("email", email), slog.Any("error", err))
		return &SignUpOutput{Notice: notice}, err
	}

	notice := uc.notices.Publish(ctx, domain.NoticeSuccess, message, true)
	slog.Info("signup succeeded", slog.String("activity", activity), slog.String("email", email))
	if _, err := uc.refresh.Execute(ctx); err != nil {
		slog.Warn("post-signup refresh failed", slog.Any("error", err))
	}
	return &SignUpOutput{Notice: notice}, nil
}

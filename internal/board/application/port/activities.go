package port

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"activityBoardWs/internal/board/domain"
)

var (
	// ErrBackendUnavailable covers transport-level failures: the request never
	// completed or the response could not be parsed.
	ErrBackendUnavailable = errors.New("activities backend unavailable")
)

// RejectionError carries a backend refusal: a non-success HTTP status with the
// server-provided detail, surfaced verbatim to the user.
type RejectionError struct {
	Status int
	Detail string
}

func (e *RejectionError) Error() string {
	detail := strings.TrimSpace(e.Detail)
	if detail == "" {
		return fmt.Sprintf("backend rejected request with status %d", e.Status)
	}
	return detail
}

// UserDetail returns the text shown to the user, falling back to a generic
// message when the backend sent no detail.
func (e *RejectionError) UserDetail(fallback string) string {
	if detail := strings.TrimSpace(e.Detail); detail != "" {
		return detail
	}
	return fallback
}

// AsRejection unwraps err into a RejectionError when the backend refused the
// request.
func AsRejection(err error) (*RejectionError, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

// ActivitiesBackend is the client-side contract over the three backend
// endpoints the board consumes.
type ActivitiesBackend interface {
	// FetchCatalog retrieves the full activity catalog.
	FetchCatalog(ctx context.Context) (domain.ActivityCatalog, error)
	// SignUp registers email for the named activity and returns the server
	// success message.
	SignUp(ctx context.Context, activity, email string) (string, error)
	// Unregister removes email from the named activity. Success is signalled
	// purely by the HTTP status.
	Unregister(ctx context.Context, activity, email string) error
}

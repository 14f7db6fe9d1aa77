package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"activityBoardWs/internal/board/application/port"
	"activityBoardWs/internal/board/application/usecase"
	"activityBoardWs/internal/board/domain"
	"activityBoardWs/internal/shared/httputil"
)

const genericUnregisterFailure = "Failed to unregister. Please try again."

// BoardHandler exposes the board page and the sign-up/unregister actions.
type BoardHandler struct {
	refreshUC    *usecase.RefreshUseCase
	signupUC     *usecase.SignUpUseCase
	unregisterUC *usecase.UnregisterUseCase
	notices      *usecase.NoticeCenter
	errors       *httputil.ErrorMapper
}

func NewBoardHandler(refreshUC *usecase.RefreshUseCase, signupUC *usecase.SignUpUseCase, unregisterUC *usecase.UnregisterUseCase, notices *usecase.NoticeCenter) *BoardHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrMissingEmail, http.StatusBadRequest, "missing email").
		WithMapping(usecase.ErrMissingActivity, http.StatusBadRequest, "missing activity").
		WithMapping(usecase.ErrConfirmationRequired, http.StatusConflict, "confirmation required").
		WithMapping(port.ErrBackendUnavailable, http.StatusBadGateway, "activities backend unavailable")
	return &BoardHandler{
		refreshUC:    refreshUC,
		signupUC:     signupUC,
		unregisterUC: unregisterUC,
		notices:      notices,
		errors:       mapper,
	}
}

type boardActionRequest struct {
	Email     string `json:"email" form:"email" query:"email"`
	Activity  string `json:"activity" form:"activity" query:"activity"`
	Confirmed bool   `json:"confirmed" form:"confirmed" query:"confirmed"`
}

type boardActionResponse struct {
	Notice  *domain.Notice `json:"notice,omitempty"`
	Confirm string         `json:"confirm,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Page renders the server-side board from the current snapshot. Before the
// first successful poll it fetches once on demand.
func (h *BoardHandler) Page(c echo.Context) error {
	snapshot := h.refreshUC.Current()
	if snapshot == nil {
		snapshot, _ = h.refreshUC.Execute(c.Request().Context())
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return RenderBoardPage(c.Response(), snapshot, h.notices.Current())
}

// SignUp handles POST /board/signup. The outcome is always expressed as a
// notice, both in the response and on the broadcast channel.
func (h *BoardHandler) SignUp(c echo.Context) error {
	var req boardActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, boardActionResponse{Error: "invalid request body"})
	}

	out, err := h.signupUC.Execute(c.Request().Context(), usecase.SignUpInput{Email: req.Email, Activity: req.Activity})
	if rejection, ok := port.AsRejection(err); ok {
		return c.JSON(rejection.Status, boardActionResponse{Notice: &out.Notice})
	}
	if err != nil {
		if out != nil {
			// Transport-level failure already turned into a generic notice.
			return c.JSON(http.StatusBadGateway, boardActionResponse{Notice: &out.Notice})
		}
		info := h.errors.Map(err)
		return c.JSON(info.Status, boardActionResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, boardActionResponse{Notice: &out.Notice})
}

// Unregister handles DELETE /board/unregister. Failures are reported only on
// this response, never as a board notice.
func (h *BoardHandler) Unregister(c echo.Context) error {
	var req boardActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, boardActionResponse{Error: "invalid request body"})
	}

	out, err := h.unregisterUC.Execute(c.Request().Context(), usecase.UnregisterInput{
		Email:     req.Email,
		Activity:  req.Activity,
		Confirmed: req.Confirmed,
	})
	if errors.Is(err, usecase.ErrConfirmationRequired) {
		return c.JSON(http.StatusConflict, boardActionResponse{Confirm: out.Prompt})
	}
	if rejection, ok := port.AsRejection(err); ok {
		return c.JSON(rejection.Status, boardActionResponse{Error: rejection.UserDetail(genericUnregisterFailure)})
	}
	if err != nil {
		info := h.errors.Map(err)
		slog.Warn("unregister request failed", slog.Int("status", info.Status), slog.Any("error", err))
		return c.JSON(info.Status, boardActionResponse{Error: info.Message})
	}
	return c.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (h *BoardHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

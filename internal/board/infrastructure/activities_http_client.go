package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"activityBoardWs/internal/board/application/port"
	"activityBoardWs/internal/board/domain"
)

// ActivitiesHTTPClient implements port.ActivitiesBackend against the school
// activities REST API.
type ActivitiesHTTPClient struct {
	rest    *RESTClient
	timeout time.Duration
}

func NewActivitiesHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *ActivitiesHTTPClient {
	return &ActivitiesHTTPClient{rest: NewRESTClient(baseURL, timeout, client), timeout: timeoutOrDefault(timeout)}
}

type signupSuccess struct {
	Message string `json:"message"`
}

type backendDetail struct {
	Detail string `json:"detail"`
}

func (c *ActivitiesHTTPClient) FetchCatalog(ctx context.Context) (domain.ActivityCatalog, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/activities", nil)
	if err != nil {
		slog.Error("catalog request build failed", slog.Any("error", err))
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("catalog request error", slog.String("url", req.URL.String()), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", port.ErrBackendUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("catalog fetch unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return nil, fmt.Errorf("%w: unexpected catalog response %d", port.ErrBackendUnavailable, res.StatusCode)
	}

	var catalog domain.ActivityCatalog
	if err := json.NewDecoder(res.Body).Decode(&catalog); err != nil {
		slog.Error("catalog decode failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: decode catalog: %v", port.ErrBackendUnavailable, err)
	}
	slog.Debug("catalog fetched", slog.Int("activities", len(catalog)))
	return catalog, nil
}

func (c *ActivitiesHTTPClient) SignUp(ctx context.Context, activity, email string) (string, error) {
	res, err := c.mutate(ctx, http.MethodPost, signupPath(activity), email)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return "", decodeRejection(res)
	}

	var payload signupSuccess
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		slog.Warn("signup response decode failed", slog.String("activity", activity), slog.Any("error", err))
		return "", fmt.Errorf("%w: decode signup response: %v", port.ErrBackendUnavailable, err)
	}
	return payload.Message, nil
}

func (c *ActivitiesHTTPClient) Unregister(ctx context.Context, activity, email string) error {
	res, err := c.mutate(ctx, http.MethodDelete, unregisterPath(activity), email)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return decodeRejection(res)
	}
	// Body not required on success.
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 2048))
	return nil
}

func (c *ActivitiesHTTPClient) mutate(ctx context.Context, method, path, email string) (*http.Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.rest.NewRequest(ctx, method, path, nil)
	if err != nil {
		slog.Error("board mutation request build failed", slog.String("path", path), slog.Any("error", err))
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	values := url.Values{}
	values.Set("email", strings.TrimSpace(email))
	req.URL.RawQuery = values.Encode()
	slog.Debug("board mutation request", slog.String("method", method), slog.String("url", req.URL.String()))

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("board mutation request error", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", port.ErrBackendUnavailable, err)
	}
	return res, nil
}

func decodeRejection(res *http.Response) error {
	rejection := &port.RejectionError{Status: res.StatusCode}
	var payload backendDetail
	if err := json.NewDecoder(io.LimitReader(res.Body, 4096)).Decode(&payload); err == nil {
		rejection.Detail = strings.TrimSpace(payload.Detail)
	}
	slog.Warn("backend rejected request", slog.Int("status", rejection.Status), slog.String("detail", rejection.Detail))
	return rejection
}

func signupPath(activity string) string {
	return "/activities/" + url.PathEscape(strings.TrimSpace(activity)) + "/signup"
}

func unregisterPath(activity string) string {
	return "/activities/" + url.PathEscape(strings.TrimSpace(activity)) + "/unregister"
}

var _ port.ActivitiesBackend = (*ActivitiesHTTPClient)(nil)

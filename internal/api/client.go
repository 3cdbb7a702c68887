// Package api is the HTTP client for the activity service, the source of
// truth for logged activities. The client reports every failure to its
// caller unchanged and never retries: retrying is an explicit user action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/session"
)

// ListFilter narrows a List call. Zero values mean "no constraint".
type ListFilter struct {
	Type      domain.ActivityType
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Size      int
}

// Client provides access to the activity service REST API.
type Client interface {
	// List fetches the user's activities, newest first (server-defined order).
	List(ctx context.Context, sess *session.Session, filter ListFilter) ([]domain.Activity, error)

	// Get fetches a single activity by ID.
	Get(ctx context.Context, sess *session.Session, id string) (*domain.Activity, error)

	// Create submits a draft and returns the stored activity with its
	// server-assigned ID.
	Create(ctx context.Context, sess *session.Session, draft domain.Draft) (*domain.Activity, error)

	// Update replaces an activity's fields with the draft.
	Update(ctx context.Context, sess *session.Session, id string, draft domain.Draft) (*domain.Activity, error)

	// Delete removes an activity.
	Delete(ctx context.Context, sess *session.Session, id string) error

	// Stats fetches the server-computed aggregate for the user over the last
	// period days.
	Stats(ctx context.Context, sess *session.Session, periodDays int) (*domain.UserStats, error)

	// Available checks whether the activity service is reachable.
	Available(ctx context.Context) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the activity service at
// cfg.Endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) List(ctx context.Context, sess *session.Session, filter ListFilter) ([]domain.Activity, error) {
	q := url.Values{}
	if filter.Type != "" && filter.Type != domain.TypeFilterAll {
		q.Set("activityType", string(filter.Type))
	}
	if filter.StartDate != nil {
		q.Set("startDate", filter.StartDate.Format(time.RFC3339))
	}
	if filter.EndDate != nil {
		q.Set("endDate", filter.EndDate.Format(time.RFC3339))
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Size > 0 {
		q.Set("size", strconv.Itoa(filter.Size))
	}

	path := "/api/activities"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []domain.Activity
	if err := c.do(ctx, sess, "list_activities", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) Get(ctx context.Context, sess *session.Session, id string) (*domain.Activity, error) {
	var out domain.Activity
	if err := c.do(ctx, sess, "get_activity", http.MethodGet, "/api/activities/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) Create(ctx context.Context, sess *session.Session, draft domain.Draft) (*domain.Activity, error) {
	var out domain.Activity
	if err := c.do(ctx, sess, "create_activity", http.MethodPost, "/api/activities", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) Update(ctx context.Context, sess *session.Session, id string, draft domain.Draft) (*domain.Activity, error) {
	var out domain.Activity
	if err := c.do(ctx, sess, "update_activity", http.MethodPut, "/api/activities/"+url.PathEscape(id), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) Delete(ctx context.Context, sess *session.Session, id string) error {
	return c.do(ctx, sess, "delete_activity", http.MethodDelete, "/api/activities/"+url.PathEscape(id), nil, nil)
}

func (c *httpClient) Stats(ctx context.Context, sess *session.Session, periodDays int) (*domain.UserStats, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	path := fmt.Sprintf("/api/activities/stats/%s?period=%d", url.PathEscape(sess.UserID), periodDays)

	var out domain.UserStats
	if err := c.do(ctx, sess, "user_stats", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/activities/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// do performs a single request and decodes the JSON response into out when
// out is non-nil.
func (c *httpClient) do(ctx context.Context, sess *session.Session, op, method, path string, body, out any) error {
	start := time.Now()
	requestID := uuid.New().String()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		req.Header.Set("X-User-ID", sess.UserID)
	}

	status, callErr := c.roundTrip(ctx, req, out)

	event := CallEvent{
		Service:   "activity",
		Operation: op,
		RequestID: requestID,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   callErr == nil,
		ErrorCode: ErrorCode(callErr),
	}
	c.observer.OnCallComplete(event)

	return callErr
}

func (c *httpClient) roundTrip(ctx context.Context, req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ErrTimeout
		}
		if isConnectionError(err) {
			return 0, ErrUnavailable
		}
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return resp.StatusCode, ErrTimeout
		}
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		return resp.StatusCode, err
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func classifyStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: status %d: %s", ErrInvalidRequest, status, truncateBody(body))
	default:
		return fmt.Errorf("%w: status %d: %s", ErrServer, status, truncateBody(body))
	}
}

func truncateBody(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

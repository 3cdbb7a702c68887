// Package coach is the client for the AI coaching service. Advice documents
// come back as loosely-typed JSON; the Service layer substitutes
// deterministic fallback documents when the service is unreachable or
// returns something unusable, so coaching surfaces always render.
package coach

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
	"time"

	"github.com/google/uuid"
	"github.com/openfit/fitctl/internal/api"
	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/session"
)

var (
	// ErrUnavailable indicates the AI service is unreachable.
	ErrUnavailable = errors.New("coach service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("coach request timed out")

	// ErrInvalidDocument indicates the response body could not be decoded.
	ErrInvalidDocument = errors.New("invalid advice document")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("coach retry attempts exhausted")
)

// WorkoutPlanRequest describes the user for plan generation.
type WorkoutPlanRequest struct {
	UserProfile  string `json:"userProfile"`
	Goals        string `json:"goals"`
	FitnessLevel string `json:"fitnessLevel"`
}

// NutritionRequest describes the activity context for nutrition advice.
type NutritionRequest struct {
	ActivityType        string `json:"activityType"`
	CaloriesBurned      int    `json:"caloriesBurned"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
}

// MotivationRequest describes the user's state for a motivational message.
type MotivationRequest struct {
	UserMood       string `json:"userMood"`
	RecentActivity string `json:"recentActivity"`
	Goals          string `json:"goals"`
}

// InjuryPreventionRequest describes the user for injury-prevention advice.
type InjuryPreventionRequest struct {
	ActivityType string `json:"activityType"`
	UserAge      string `json:"userAge"`
	FitnessLevel string `json:"fitnessLevel"`
}

// SocialRequest describes the user's context for social suggestions.
type SocialRequest struct {
	ActivityType string `json:"activityType"`
	Location     string `json:"location"`
	Goals        string `json:"goals"`
}

type progressRequest struct {
	Activities []domain.Activity `json:"activities"`
}

// Client provides access to the AI coaching service REST API.
type Client interface {
	GenerateRecommendation(ctx context.Context, sess *session.Session, activity domain.Activity) (*Recommendation, error)
	UserRecommendations(ctx context.Context, sess *session.Session) ([]Recommendation, error)
	WorkoutPlan(ctx context.Context, sess *session.Session, req WorkoutPlanRequest) (Document, error)
	NutritionAdvice(ctx context.Context, sess *session.Session, req NutritionRequest) (Document, error)
	ProgressAnalysis(ctx context.Context, sess *session.Session, activities []domain.Activity) (Document, error)
	Motivation(ctx context.Context, sess *session.Session, req MotivationRequest) (Document, error)
	InjuryPrevention(ctx context.Context, sess *session.Session, req InjuryPreventionRequest) (Document, error)
	SocialSuggestions(ctx context.Context, sess *session.Session, req SocialRequest) (Document, error)

	// Available checks whether the AI service is reachable.
	Available(ctx context.Context) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer api.Observer
}

// NewClient creates a Client that talks to the AI service at cfg.Endpoint.
func NewClient(cfg Config, observer api.Observer) Client {
	if observer == nil {
		observer = api.NoopObserver{}
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

func (c *httpClient) GenerateRecommendation(ctx context.Context, sess *session.Session, activity domain.Activity) (*Recommendation, error) {
	var out Recommendation
	if err := c.do(ctx, sess, "recommendation", http.MethodPost, "/api/ai/recommendations", activity, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) UserRecommendations(ctx context.Context, sess *session.Session) ([]Recommendation, error) {
	path := "/api/ai/recommendations/" + url.PathEscape(sess.UserID)
	var out []Recommendation
	if err := c.do(ctx, sess, "user_recommendations", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) WorkoutPlan(ctx context.Context, sess *session.Session, req WorkoutPlanRequest) (Document, error) {
	return c.advice(ctx, sess, "workout_plan", "/api/ai/workout-plan", req)
}

func (c *httpClient) NutritionAdvice(ctx context.Context, sess *session.Session, req NutritionRequest) (Document, error) {
	return c.advice(ctx, sess, "nutrition_advice", "/api/ai/nutrition-advice", req)
}

func (c *httpClient) ProgressAnalysis(ctx context.Context, sess *session.Session, activities []domain.Activity) (Document, error) {
	return c.advice(ctx, sess, "progress_analysis", "/api/ai/progress-analysis", progressRequest{Activities: activities})
}

func (c *httpClient) Motivation(ctx context.Context, sess *session.Session, req MotivationRequest) (Document, error) {
	return c.advice(ctx, sess, "motivation", "/api/ai/motivation", req)
}

func (c *httpClient) InjuryPrevention(ctx context.Context, sess *session.Session, req InjuryPreventionRequest) (Document, error) {
	return c.advice(ctx, sess, "injury_prevention", "/api/ai/injury-prevention", req)
}

func (c *httpClient) SocialSuggestions(ctx context.Context, sess *session.Session, req SocialRequest) (Document, error) {
	return c.advice(ctx, sess, "social_suggestions", "/api/ai/social-features", req)
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/ai/health", nil)
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

func (c *httpClient) advice(ctx context.Context, sess *session.Session, op, path string, body any) (Document, error) {
	var out Document
	if err := c.do(ctx, sess, op, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do performs a request with retries. Generation is idempotent on the AI
// service side, so a transient failure is retried up to cfg.MaxRetries times
// before the error is surfaced.
func (c *httpClient) do(ctx context.Context, sess *session.Session, op, method, path string, body, out any) error {
	start := time.Now()
	requestID := uuid.New().String()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		payload = data
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		status, err := c.doRequest(ctx, sess, method, path, requestID, payload, out)
		if err == nil {
			c.observer.OnCallComplete(api.CallEvent{
				Service:   "coach",
				Operation: op,
				RequestID: requestID,
				Status:    status,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or a decode failure.
		if ctx.Err() != nil || errors.Is(err, ErrInvalidDocument) {
			break
		}
	}

	if ctx.Err() != nil {
		lastErr = ErrTimeout
	} else if !errors.Is(lastErr, ErrInvalidDocument) && !errors.Is(lastErr, ErrUnavailable) {
		lastErr = fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
	}

	c.observer.OnCallComplete(api.CallEvent{
		Service:   "coach",
		Operation: op,
		RequestID: requestID,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})
	return lastErr
}

func (c *httpClient) doRequest(ctx context.Context, sess *session.Session, method, path, requestID string, payload []byte, out any) (int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		req.Header.Set("X-User-ID", sess.UserID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return 0, ErrUnavailable
		}
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("coach service returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	return resp.StatusCode, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidDocument):
		return "INVALID_DOCUMENT"
	default:
		return "UNKNOWN"
	}
}

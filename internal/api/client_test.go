package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

func testSession() *session.Session {
	return &session.Session{UserID: "user-42", Token: "test-token"}
}

func TestClient_List_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "user-42", r.Header.Get("X-User-ID"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		json.NewEncoder(w).Encode([]domain.Activity{
			{ID: "a1", Type: domain.TypeRunning, DurationMin: 30, CaloriesBurned: 300},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	activities, err := client.List(context.Background(), testSession(), ListFilter{})

	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "a1", activities[0].ID)
	assert.Equal(t, domain.TypeRunning, activities[0].Type)
}

func TestClient_List_FilterQuery(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "YOGA", q.Get("activityType"))
		assert.Equal(t, "2026-03-01T00:00:00Z", q.Get("startDate"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("size"))
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.List(context.Background(), testSession(), ListFilter{
		Type:      domain.TypeYoga,
		StartDate: &start,
		Page:      2,
		Size:      20,
	})
	require.NoError(t, err)
}

func TestClient_Create_SendsDraftAndDecodesActivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft domain.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, domain.TypeCycling, draft.Type)
		assert.Equal(t, 45, draft.DurationMin)

		created := domain.Activity{ID: "srv-id", Type: draft.Type, DurationMin: draft.DurationMin, CaloriesBurned: draft.CaloriesBurned}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	got, err := client.Create(context.Background(), testSession(), domain.Draft{
		Type:           domain.TypeCycling,
		StartTime:      time.Now(),
		DurationMin:    45,
		CaloriesBurned: 360,
	})

	require.NoError(t, err)
	assert.Equal(t, "srv-id", got.ID)
}

func TestClient_Update_UsesPutWithID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities/abc", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)
		json.NewEncoder(w).Encode(domain.Activity{ID: "abc"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	got, err := client.Update(context.Background(), testSession(), "abc", domain.Draft{Type: domain.TypeRunning})

	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
}

func TestClient_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities/abc", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	assert.NoError(t, client.Delete(context.Background(), testSession(), "abc"))
}

func TestClient_Stats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities/stats/user-42", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("period"))
		json.NewEncoder(w).Encode(domain.UserStats{
			TotalActivities:            4,
			TotalCaloriesBurned:        1050,
			TotalDurationMinutes:       165,
			AverageCaloriesPerActivity: 262.5,
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	stats, err := client.Stats(context.Background(), testSession(), 7)

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalActivities)
	assert.Equal(t, 262.5, stats.AverageCaloriesPerActivity)
}

func TestClient_Stats_DefaultPeriod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30", r.URL.Query().Get("period"))
		json.NewEncoder(w).Encode(domain.UserStats{})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Stats(context.Background(), testSession(), 0)
	require.NoError(t, err)
}

func TestClient_StatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"bad request", http.StatusBadRequest, ErrInvalidRequest},
		{"server error", http.StatusInternalServerError, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("nope"))
			}))
			defer srv.Close()

			client := NewClient(testConfig(srv.URL), NoopObserver{})
			_, err := client.Get(context.Background(), testSession(), "x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Get(context.Background(), testSession(), "x")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Unavailable(t *testing.T) {
	client := NewClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	_, err := client.Get(context.Background(), testSession(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	down := NewClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, down.Available(context.Background()))
}

func TestClient_ObserverReceivesEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewClient(testConfig(srv.URL), observer)
	_, err := client.List(context.Background(), testSession(), ListFilter{})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "activity", events[0].Service)
	assert.Equal(t, "list_activities", events[0].Operation)
	assert.True(t, events[0].Success)
	assert.NotEmpty(t, events[0].RequestID)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }

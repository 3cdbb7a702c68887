package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openfit/fitctl/internal/coach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coachService(endpoint string) *coach.Service {
	cfg := coach.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 2000
	return coach.NewService(coach.NewClient(cfg, nil))
}

func TestCoachCommands_FallBackWhenServiceDown(t *testing.T) {
	app := testApp(t, seededClient())
	app.Coach = coachService("http://127.0.0.1:1")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"coach", "workout"}, "Basic Fitness Plan"},
		{[]string{"coach", "nutrition"}, "Protein shake"},
		{[]string{"coach", "progress"}, "making good progress"},
		{[]string{"coach", "motivation"}, "You've got this!"},
		{[]string{"coach", "injury"}, "Arm circles"},
		{[]string{"coach", "social"}, "30-Day Fitness Challenge"},
	}

	for _, tt := range tests {
		out, err := execute(t, app, tt.args...)
		require.NoError(t, err, "args %v", tt.args)
		assert.Contains(t, out, tt.want, "args %v", tt.args)
	}
}

func TestCoachMotivation_RendersServiceDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/motivation", r.URL.Path)
		w.Write([]byte(`{"motivation": {"message": "Run like the wind"}}`))
	}))
	defer srv.Close()

	app := testApp(t, seededClient())
	app.Coach = coachService(srv.URL)

	out, err := execute(t, app, "coach", "motivation")
	require.NoError(t, err)
	assert.Contains(t, out, "MOTIVATION")
	assert.Contains(t, out, "Run like the wind")
}

func TestCoachAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/recommendations", r.URL.Path)
		json.NewEncoder(w).Encode(coach.Recommendation{
			ActivityID:     "run-1",
			Recommendation: "Strong aerobic base, add intervals",
		})
	}))
	defer srv.Close()

	app := testApp(t, seededClient())
	app.Coach = coachService(srv.URL)

	out, err := execute(t, app, "coach", "analyze", "run-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Strong aerobic base")
}

func TestCoachAnalyze_FallbackWhenServiceDown(t *testing.T) {
	app := testApp(t, seededClient())
	app.Coach = coachService("http://127.0.0.1:1")

	out, err := execute(t, app, "coach", "analyze", "run-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Unable to generate detailed analysis")
	assert.Contains(t, out, "Stay hydrated")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	app := testApp(t, seededClient())
	app.Coach = coachService(srv.URL)

	out, err := execute(t, app, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "activity service reachable")
	assert.Contains(t, out, "coach service reachable")

	app.Coach = coachService("http://127.0.0.1:1")
	out, err = execute(t, app, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "coach service unreachable")
}

func TestCoachRecs_EmptyHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	app := testApp(t, seededClient())
	app.Coach = coachService(srv.URL)

	out, err := execute(t, app, "coach", "recs")
	require.NoError(t, err)
	assert.Contains(t, out, "No recommendations yet")
}

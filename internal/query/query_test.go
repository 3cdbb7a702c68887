package query

import (
	"testing"
	"time"

	"github.com/openfit/fitctl/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testActivities() []domain.Activity {
	base := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	return []domain.Activity{
		{ID: "a", Type: domain.TypeRunning, StartTime: base.Add(48 * time.Hour), DurationMin: 30, CaloriesBurned: 300},
		{ID: "b", Type: domain.TypeStrengthTraining, StartTime: base.Add(24 * time.Hour), DurationMin: 45, CaloriesBurned: 270},
		{ID: "c", Type: domain.TypeYoga, StartTime: base, DurationMin: 60, CaloriesBurned: 180},
	}
}

func ids(activities []domain.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	all := testActivities()

	tests := []struct {
		name       string
		searchTerm string
		typeFilter domain.ActivityType
		want       []string
	}{
		{"no criteria keeps everything", "", domain.TypeFilterAll, []string{"a", "b", "c"}},
		{"type filter", "", domain.TypeYoga, []string{"c"}},
		{"search is case-insensitive", "RUN", domain.TypeFilterAll, []string{"a"}},
		{"search matches display text of compound types", "strength train", domain.TypeFilterAll, []string{"b"}},
		{"criteria are conjunctive", "yoga", domain.TypeRunning, nil},
		{"whitespace-only term matches everything", "   ", domain.TypeFilterAll, []string{"a", "b", "c"}},
		{"no match", "rowing", domain.TypeFilterAll, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.searchTerm, tt.typeFilter)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := testActivities()
	Filter(all, "yoga", domain.TypeFilterAll)
	assert.Equal(t, []string{"a", "b", "c"}, ids(all))
}

func TestSort(t *testing.T) {
	all := testActivities()

	tests := []struct {
		name string
		key  domain.SortKey
		want []string
	}{
		{"by date newest first", domain.SortByDate, []string{"a", "b", "c"}},
		{"by duration longest first", domain.SortByDuration, []string{"c", "b", "a"}},
		{"by calories highest first", domain.SortByCalories, []string{"a", "b", "c"}},
		{"unknown key keeps input order", domain.SortKey("bogus"), []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(all, tt.key)))
		})
	}
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	when := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	same := []domain.Activity{
		{ID: "first", StartTime: when, DurationMin: 30},
		{ID: "second", StartTime: when, DurationMin: 30},
		{ID: "third", StartTime: when, DurationMin: 30},
	}

	sorted := Sort(same, domain.SortByDate)
	assert.Equal(t, []string{"first", "second", "third"}, ids(sorted))

	// Repeated sorting of identical input is idempotent.
	assert.Equal(t, ids(sorted), ids(Sort(sorted, domain.SortByDate)))
}

func TestSort_ReturnsCopy(t *testing.T) {
	all := testActivities()
	Sort(all, domain.SortByDuration)
	assert.Equal(t, []string{"a", "b", "c"}, ids(all))
}

func TestSummarize(t *testing.T) {
	got := Summarize(testActivities())
	assert.Equal(t, domain.Summary{Count: 3, TotalDurationMin: 135, TotalCalories: 750}, got)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, domain.Summary{}, Summarize(nil))
}

func TestSummarize_RoundsOnceAtTheEnd(t *testing.T) {
	// Three 0.4 fractions sum to 1.2 extra calories. Per-item rounding would
	// drop all of them; summing first keeps one.
	fractional := []domain.Activity{
		{DurationMin: 10, CaloriesBurned: 100.4},
		{DurationMin: 10, CaloriesBurned: 100.4},
		{DurationMin: 10, CaloriesBurned: 100.4},
	}
	got := Summarize(fractional)
	assert.Equal(t, 301, got.TotalCalories)
}

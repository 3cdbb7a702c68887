// Package query holds the pure view logic over an activity sequence: text and
// type filtering, ordering, and aggregate summaries. Every function is a
// deterministic, side-effect-free function of its inputs and returns a new
// slice, leaving the input untouched.
package query

import (
	"math"
	"sort"
	"strings"

	"github.com/openfit/fitctl/internal/domain"
)

// Filter keeps activities whose type matches typeFilter (TypeFilterAll keeps
// every type) and whose display text contains searchTerm case-insensitively.
// Both predicates are conjunctive; an empty search term matches everything.
func Filter(activities []domain.Activity, searchTerm string, typeFilter domain.ActivityType) []domain.Activity {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if typeFilter != domain.TypeFilterAll && a.Type != typeFilter {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(a.Type.DisplayName()), term) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Sort orders activities descending by the given key. The sort is stable:
// entries with equal keys keep their original relative order, so repeated
// renders of identical input produce identical output. An unknown key leaves
// the order untouched.
func Sort(activities []domain.Activity, key domain.SortKey) []domain.Activity {
	out := make([]domain.Activity, len(activities))
	copy(out, activities)

	switch key {
	case domain.SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StartTime.After(out[j].StartTime)
		})
	case domain.SortByDuration:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DurationMin > out[j].DurationMin
		})
	case domain.SortByCalories:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CaloriesBurned > out[j].CaloriesBurned
		})
	}
	return out
}

// Summarize reduces a sequence to its aggregate counts. Totals are rounded
// once at the end, not per item. An empty sequence yields the zero summary.
func Summarize(activities []domain.Activity) domain.Summary {
	var durationMin float64
	var calories float64
	for _, a := range activities {
		durationMin += float64(a.DurationMin)
		calories += a.CaloriesBurned
	}
	return domain.Summary{
		Count:            len(activities),
		TotalDurationMin: int(math.Round(durationMin)),
		TotalCalories:    int(math.Round(calories)),
	}
}

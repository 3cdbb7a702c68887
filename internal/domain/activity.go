package domain

import (
	"errors"
	"fmt"
	"time"
)

// Duration bounds for a single logged session, in minutes.
const (
	MinDurationMin = 1
	MaxDurationMin = 480
)

// Activity is a single logged exercise session. The ID is assigned by the
// activity service on creation and immutable thereafter.
type Activity struct {
	ID                string       `json:"id"`
	UserID            string       `json:"userId,omitempty"`
	Type              ActivityType `json:"type"`
	StartTime         time.Time    `json:"startTime"`
	DurationMin       int          `json:"duration"`
	CaloriesBurned    float64      `json:"caloriesBurned"`
	AdditionalMetrics string       `json:"additionalMetrics,omitempty"`
	CreatedAt         time.Time    `json:"createdAt,omitempty"`
	UpdatedAt         time.Time    `json:"updatedAt,omitempty"`
}

// Draft is user-supplied input for create/update, before the server has
// assigned an identifier.
type Draft struct {
	Type              ActivityType `json:"type"`
	StartTime         time.Time    `json:"startTime"`
	DurationMin       int          `json:"duration"`
	CaloriesBurned    float64      `json:"caloriesBurned"`
	AdditionalMetrics string       `json:"additionalMetrics,omitempty"`
}

var (
	ErrMissingStartTime = errors.New("start time is required")
	ErrDurationRange    = fmt.Errorf("duration must be between %d and %d minutes", MinDurationMin, MaxDurationMin)
	ErrCaloriesRange    = errors.New("calories burned must be positive")
	ErrMissingType      = errors.New("activity type is required")
)

// Validate checks the domain constraints on a draft. Unrecognized type
// strings pass validation; only an empty type is rejected.
func (d Draft) Validate() error {
	if d.Type == "" {
		return ErrMissingType
	}
	if d.StartTime.IsZero() {
		return ErrMissingStartTime
	}
	if d.DurationMin < MinDurationMin || d.DurationMin > MaxDurationMin {
		return ErrDurationRange
	}
	if d.CaloriesBurned <= 0 {
		return ErrCaloriesRange
	}
	return nil
}

// Summary is the aggregate over an activity sequence. Derived on demand,
// never persisted or cached.
type Summary struct {
	Count            int
	TotalDurationMin int
	TotalCalories    int
}

// UserStats is the server-computed aggregate for a user over a period.
type UserStats struct {
	TotalActivities            int     `json:"totalActivities"`
	TotalCaloriesBurned        float64 `json:"totalCaloriesBurned"`
	TotalDurationMinutes       int     `json:"totalDurationMinutes"`
	AverageCaloriesPerActivity float64 `json:"averageCaloriesPerActivity"`
}

// Package estimate derives suggested calorie burn figures from activity type
// and duration. The result pre-fills the calories field of a draft and may be
// overridden by the user before submission; it never constrains the stored
// value.
package estimate

import (
	"math"

	"github.com/openfit/fitctl/internal/domain"
)

// caloriesPerMinute is the fixed per-type burn rate table.
var caloriesPerMinute = map[domain.ActivityType]float64{
	domain.TypeRunning:          10,
	domain.TypeWalking:          4,
	domain.TypeCycling:          8,
	domain.TypeSwimming:         9,
	domain.TypeStrengthTraining: 6,
	domain.TypeYoga:             3,
	domain.TypePilates:          3,
	domain.TypeDancing:          7,
	domain.TypeHiking:           6,
	domain.TypeTennis:           8,
	domain.TypeBasketball:       9,
	domain.TypeSoccer:           8,
	domain.TypeOther:            5,
}

// Rate returns the per-minute burn rate for t. Unrecognized types use the
// OTHER rate.
func Rate(t domain.ActivityType) float64 {
	if r, ok := caloriesPerMinute[t]; ok {
		return r
	}
	return caloriesPerMinute[domain.TypeOther]
}

// Calories estimates the burn for an activity of type t lasting the given
// number of minutes, rounded to the nearest integer.
func Calories(t domain.ActivityType, durationMin int) int {
	return int(math.Round(Rate(t) * float64(durationMin)))
}

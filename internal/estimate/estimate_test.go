package estimate

import (
	"testing"

	"github.com/openfit/fitctl/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalories_KnownTypes(t *testing.T) {
	tests := []struct {
		name     string
		typ      domain.ActivityType
		duration int
		want     int
	}{
		{"running half hour", domain.TypeRunning, 30, 300},
		{"yoga full hour", domain.TypeYoga, 60, 180},
		{"walking", domain.TypeWalking, 45, 180},
		{"strength training", domain.TypeStrengthTraining, 50, 300},
		{"swimming single minute", domain.TypeSwimming, 1, 9},
		{"other", domain.TypeOther, 20, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calories(tt.typ, tt.duration))
		})
	}
}

func TestCalories_UnrecognizedTypeUsesOtherRate(t *testing.T) {
	assert.Equal(t, Calories(domain.TypeOther, 40), Calories(domain.ActivityType("PARKOUR"), 40))
}

func TestRate_CoversEveryDeclaredType(t *testing.T) {
	for _, typ := range domain.AllActivityTypes {
		assert.Greater(t, Rate(typ), 0.0, "type %s has no positive rate", typ)
	}
}

func TestCalories_ScalesLinearlyWithDuration(t *testing.T) {
	base := Calories(domain.TypeCycling, 10)
	assert.Equal(t, base*3, Calories(domain.TypeCycling, 30))
}

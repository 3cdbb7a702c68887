package coach

import (
	"time"

	"github.com/openfit/fitctl/internal/domain"
)

// Deterministic fallback documents, returned when the AI service cannot
// produce advice. Shapes match what the service itself falls back to when
// its upstream model fails, so rendering code sees one contract either way.

func FallbackRecommendation(activity domain.Activity) *Recommendation {
	return &Recommendation{
		ActivityID:     activity.ID,
		UserID:         activity.UserID,
		ActivityType:   string(activity.Type),
		Recommendation: "Unable to generate detailed analysis",
		Improvements:   []string{"Continue with your current routine"},
		Suggestions:    []string{"Consider consulting a fitness professional"},
		Safety: []string{
			"Always warm up before exercise",
			"Stay hydrated",
			"Listen to your body",
		},
		CreatedAt: time.Now(),
	}
}

func FallbackWorkoutPlan() Document {
	return Document{
		"plan": map[string]any{
			"name":        "Basic Fitness Plan",
			"description": "A simple 7-day workout plan to get you started",
			"days": []any{
				map[string]any{"day": 1, "name": "Cardio Day", "focus": "Cardiovascular fitness", "duration": "30 minutes"},
				map[string]any{"day": 2, "name": "Strength Day", "focus": "Muscle building", "duration": "45 minutes"},
				map[string]any{"day": 3, "name": "Rest Day", "focus": "Recovery", "duration": "0 minutes"},
			},
			"nutrition": map[string]any{
				"preWorkout":  "Eat a light meal 2-3 hours before",
				"postWorkout": "Protein and carbs within 30 minutes",
				"hydration":   "Drink water throughout the day",
			},
		},
	}
}

func FallbackNutritionAdvice() Document {
	return Document{
		"nutrition": map[string]any{
			"preWorkout": map[string]any{
				"timing": "2-3 hours before",
				"foods":  []any{"Banana", "Oatmeal", "Greek yogurt"},
				"avoid":  []any{"Heavy meals", "High fat foods"},
			},
			"postWorkout": map[string]any{
				"timing":  "Within 30 minutes",
				"foods":   []any{"Protein shake", "Chicken breast", "Sweet potato"},
				"protein": "20-30g protein",
				"carbs":   "30-60g carbs",
			},
			"hydration": map[string]any{
				"before": "Drink 16-20 oz water",
				"during": "Drink 7-10 oz every 10-20 minutes",
				"after":  "Drink 20-24 oz for every pound lost",
			},
			"supplements": []any{"Multivitamin", "Omega-3"},
			"tips":        []any{"Stay hydrated", "Eat whole foods", "Listen to your body"},
		},
	}
}

func FallbackProgressAnalysis() Document {
	return Document{
		"progress": map[string]any{
			"overall":    "You're making good progress! Keep up the consistency.",
			"strengths":  []any{"Consistent workout schedule", "Good form"},
			"weaknesses": []any{"Could increase intensity", "Need more variety"},
			"trends": map[string]any{
				"frequency": "Improving",
				"intensity": "Stable",
				"variety":   "Could improve",
			},
			"recommendations": []any{
				map[string]any{"area": "Intensity", "action": "Try interval training", "timeline": "2 weeks"},
				map[string]any{"area": "Variety", "action": "Add new exercises", "timeline": "1 week"},
			},
		},
	}
}

func FallbackMotivation() Document {
	return Document{
		"motivation": map[string]any{
			"message":       "Every workout brings you closer to your goals. You've got this!",
			"quote":         "The only bad workout is the one that didn't happen.",
			"action":        "Take a 10-minute walk today",
			"mindset":       "Focus on progress, not perfection",
			"encouragement": "You're stronger than you think. Keep pushing forward!",
		},
	}
}

func FallbackInjuryPrevention() Document {
	return Document{
		"injuryPrevention": map[string]any{
			"warmup": map[string]any{
				"duration":   "5-10 minutes",
				"exercises":  []any{"Light jogging", "Arm circles", "Leg swings"},
				"importance": "Prepares your body for exercise and reduces injury risk",
			},
			"technique": map[string]any{
				"keyPoints":      []any{"Maintain proper form", "Start with lighter weights"},
				"commonMistakes": []any{"Rushing through exercises", "Poor posture"},
				"corrections":    []any{"Focus on form over speed", "Keep core engaged"},
			},
			"recovery": map[string]any{
				"stretching": []any{"Hamstring stretch", "Quad stretch", "Chest stretch"},
				"rest":       "Take at least one rest day per week",
				"signs":      []any{"Persistent pain", "Swelling", "Decreased range of motion"},
			},
		},
	}
}

func FallbackSocialSuggestions() Document {
	return Document{
		"social": map[string]any{
			"challenges": []any{
				map[string]any{"name": "30-Day Fitness Challenge", "description": "Complete 30 days of consistent workouts", "duration": "30 days"},
			},
			"groups": []any{
				map[string]any{"name": "Local Running Club", "focus": "Running and jogging", "meetingTime": "Saturday mornings"},
			},
			"events": []any{
				map[string]any{"name": "Community 5K", "date": "Next month", "description": "Fun run for all fitness levels"},
			},
			"tips": []any{"Join a local gym", "Find a workout buddy", "Participate in group classes"},
		},
	}
}

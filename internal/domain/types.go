package domain

import "strings"

type ActivityType string

const (
	TypeRunning          ActivityType = "RUNNING"
	TypeWalking          ActivityType = "WALKING"
	TypeCycling          ActivityType = "CYCLING"
	TypeSwimming         ActivityType = "SWIMMING"
	TypeStrengthTraining ActivityType = "STRENGTH_TRAINING"
	TypeYoga             ActivityType = "YOGA"
	TypePilates          ActivityType = "PILATES"
	TypeDancing          ActivityType = "DANCING"
	TypeHiking           ActivityType = "HIKING"
	TypeTennis           ActivityType = "TENNIS"
	TypeBasketball       ActivityType = "BASKETBALL"
	TypeSoccer           ActivityType = "SOCCER"
	TypeOther            ActivityType = "OTHER"
)

// AllActivityTypes lists the recognized types in display order.
var AllActivityTypes = []ActivityType{
	TypeRunning, TypeWalking, TypeCycling, TypeSwimming,
	TypeStrengthTraining, TypeYoga, TypePilates, TypeDancing,
	TypeHiking, TypeTennis, TypeBasketball, TypeSoccer, TypeOther,
}

// ValidActivityTypes is the canonical set of recognized type strings.
var ValidActivityTypes = map[ActivityType]bool{
	TypeRunning: true, TypeWalking: true, TypeCycling: true,
	TypeSwimming: true, TypeStrengthTraining: true, TypeYoga: true,
	TypePilates: true, TypeDancing: true, TypeHiking: true,
	TypeTennis: true, TypeBasketball: true, TypeSoccer: true,
	TypeOther: true,
}

// ParseActivityType normalizes a user-supplied string ("strength training",
// "strength-training", "STRENGTH_TRAINING") to an ActivityType. Unrecognized
// values are returned as-is: the backend accepts arbitrary type strings and
// estimation falls back to the OTHER rate for them.
func ParseActivityType(s string) ActivityType {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	return ActivityType(norm)
}

// Recognized reports whether t is one of the fixed enumeration values.
func (t ActivityType) Recognized() bool {
	return ValidActivityTypes[t]
}

// DisplayName renders a type for humans: "STRENGTH_TRAINING" becomes
// "Strength Training". Works for unrecognized values too.
func (t ActivityType) DisplayName() string {
	words := strings.Split(strings.ToLower(string(t)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SortKey selects the ordering applied to an activity listing.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByDuration SortKey = "duration"
	SortByCalories SortKey = "calories"
)

// TypeFilterAll is the wildcard value matching every activity type.
const TypeFilterAll ActivityType = "ALL"

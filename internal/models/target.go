package models

import (
	"math"
	"strconv"
	"strings"
)

// Calorie bounds for a single meal target.
const (
	MinCalories     = 300
	MaxCalories     = 800
	DefaultCalories = 500
)

// Activity is the caller's activity level.
type Activity string

const (
	ActivityLight    Activity = "light"
	ActivityModerate Activity = "moderate"
	ActivityHigh     Activity = "high"
)

// Taste is the caller's taste preference.
type Taste string

const (
	TasteHealthy  Taste = "healthy"
	TasteTasty    Taste = "tasty"
	TasteBalanced Taste = "balanced"
)

// Target is a resolved set of dietary parameters. Build it with ParseTarget
// or NewTarget so calories are clamped and enums defaulted.
type Target struct {
	Calories int
	Activity Activity
	Taste    Taste
}

// ParseTarget resolves raw query parameters into a Target. Unparsable
// calories fall back to DefaultCalories; unknown activity and taste values
// fall back to moderate and balanced.
func ParseTarget(rawCalories, rawActivity, rawTaste string) Target {
	calories := DefaultCalories
	if f, err := strconv.ParseFloat(strings.TrimSpace(rawCalories), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		calories = int(math.Round(f))
	}
	return NewTarget(calories, rawActivity, rawTaste)
}

// NewTarget resolves an already-numeric calorie value.
func NewTarget(calories int, activity, taste string) Target {
	return Target{
		Calories: ClampCalories(calories),
		Activity: ParseActivity(activity),
		Taste:    ParseTaste(taste),
	}
}

// ClampCalories bounds calories to [MinCalories, MaxCalories].
func ClampCalories(calories int) int {
	if calories < MinCalories {
		return MinCalories
	}
	if calories > MaxCalories {
		return MaxCalories
	}
	return calories
}

// ParseActivity maps a raw value to an Activity, defaulting to moderate.
func ParseActivity(raw string) Activity {
	switch a := Activity(strings.ToLower(strings.TrimSpace(raw))); a {
	case ActivityLight, ActivityModerate, ActivityHigh:
		return a
	default:
		return ActivityModerate
	}
}

// ParseTaste maps a raw value to a Taste, defaulting to balanced.
func ParseTaste(raw string) Taste {
	switch t := Taste(strings.ToLower(strings.TrimSpace(raw))); t {
	case TasteHealthy, TasteTasty, TasteBalanced:
		return t
	default:
		return TasteBalanced
	}
}

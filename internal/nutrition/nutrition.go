// Package nutrition derives daily energy and protein targets from a user profile.
//
// BMR uses the Mifflin-St Jeor equation. The goal adjustment is a coarse offset on top of TDEE that depends only on
// the direction and size of the gap between target and current weight.
package nutrition

import (
	"github.com/myrjola/mealmotion/internal/profile"
	"math"
)

// MinTargetCalories is the floor applied to the goal-adjusted daily calories.
const MinTargetCalories = 1200

const (
	surplusLarge   = 300
	deficitLarge   = -400
	surplusSmall   = 150
	deficitSmall   = -200
	largeGapKg     = 5
	breakfastShare = 0.25
	lunchShare     = 0.30
	dinnerShare    = 0.30
)

// BMR returns the basal metabolic rate in kcal/day.
func BMR(p *profile.UserProfile) int {
	bmr := 10*float64(p.WeightKg) + 6.25*float64(p.HeightCm) - 5*float64(p.Age) + //nolint:mnd // Mifflin-St Jeor.
		p.Gender.BMRConstant()
	return int(math.Round(bmr))
}

// TDEE returns the total daily energy expenditure in kcal/day, the rounded BMR scaled by the activity factor.
func TDEE(p *profile.UserProfile) int {
	return int(math.Round(float64(BMR(p)) * p.ActivityLevel.Factor()))
}

// TargetCalories returns the goal-adjusted daily calories, never below [MinTargetCalories].
func TargetCalories(p *profile.UserProfile) int {
	delta := p.TargetWeightKg - p.WeightKg
	var adjustment int
	switch {
	case delta >= largeGapKg:
		adjustment = surplusLarge
	case delta <= -largeGapKg:
		adjustment = deficitLarge
	case delta > 0:
		adjustment = surplusSmall
	case delta < 0:
		adjustment = deficitSmall
	}
	return max(MinTargetCalories, TDEE(p)+adjustment)
}

// TargetProtein returns the daily protein target in grams.
func TargetProtein(p *profile.UserProfile) int {
	return int(math.Round(float64(p.WeightKg) * p.BodyGoal.ProteinGramsPerKg()))
}

// Slots holds the per-meal calorie targets of one day.
type Slots struct {
	Breakfast int
	Lunch     int
	Dinner    int
	Snack     int
}

// Total is the sum of all slot targets.
func (s Slots) Total() int {
	return s.Breakfast + s.Lunch + s.Dinner + s.Snack
}

// SlotTargets splits total into breakfast 25%, lunch 30%, dinner 30% and the remainder for the snack, so the slots
// always sum to total.
func SlotTargets(total int) Slots {
	breakfast := int(math.Round(float64(total) * breakfastShare))
	lunch := int(math.Round(float64(total) * lunchShare))
	dinner := int(math.Round(float64(total) * dinnerShare))
	return Slots{
		Breakfast: breakfast,
		Lunch:     lunch,
		Dinner:    dinner,
		Snack:     total - breakfast - lunch - dinner,
	}
}

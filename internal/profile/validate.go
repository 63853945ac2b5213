package profile

import (
	"github.com/myrjola/mealmotion/internal/errors"
	"log/slog"
	"slices"
)

var ErrInvalidProfile = errors.NewSentinel("invalid profile")

const (
	minAge                = 13
	maxAge                = 120
	minHeightCm           = 120
	maxHeightCm           = 230
	minWeightKg           = 30
	maxWeightKg           = 250
	minTargetWeightKg     = 30
	maxTargetWeightKg     = 300
	maxWeightDeltaKg      = 120
	minWorkoutDaysPerWeek = 1
	maxWorkoutDaysPerWeek = 7
	minWorkoutMinutes     = 20
	maxWorkoutMinutes     = 120
)

// Validate checks the profile against the ranges a user can enter. All violations are reported together in one error
// matching [ErrInvalidProfile].
func (p *UserProfile) Validate() error {
	var violations []error
	check := func(ok bool, msg string, attrs ...slog.Attr) {
		if !ok {
			violations = append(violations, errors.New(msg, attrs...))
		}
	}

	check(p.Name != "", "name is required")
	check(between(p.Age, minAge, maxAge), "age out of range", slog.Int("age", p.Age))
	check(between(p.HeightCm, minHeightCm, maxHeightCm), "height out of range", slog.Int("height_cm", p.HeightCm))
	check(between(p.WeightKg, minWeightKg, maxWeightKg), "weight out of range", slog.Int("weight_kg", p.WeightKg))
	check(between(p.TargetWeightKg, minTargetWeightKg, maxTargetWeightKg), "target weight out of range",
		slog.Int("target_weight_kg", p.TargetWeightKg))
	check(abs(p.TargetWeightKg-p.WeightKg) <= maxWeightDeltaKg, "target weight is very far from current weight",
		slog.Int("weight_kg", p.WeightKg), slog.Int("target_weight_kg", p.TargetWeightKg))

	check(slices.Contains(Genders, p.Gender), "unknown gender", slog.String("gender", string(p.Gender)))
	check(slices.Contains(ActivityLevels, p.ActivityLevel), "unknown activity level",
		slog.String("activity_level", string(p.ActivityLevel)))
	check(slices.Contains(BodyGoals, p.BodyGoal), "unknown body goal", slog.String("body_goal", string(p.BodyGoal)))
	check(slices.Contains(DietPreferences, p.DietPreference), "unknown diet preference",
		slog.String("diet_preference", string(p.DietPreference)))

	if p.IncludeWorkouts {
		check(slices.Contains(Equipments, p.Equipment), "unknown equipment", slog.String("equipment", string(p.Equipment)))
		check(between(p.WorkoutDaysPerWeek, minWorkoutDaysPerWeek, maxWorkoutDaysPerWeek),
			"workout days/week must be 1 to 7", slog.Int("workout_days_per_week", p.WorkoutDaysPerWeek))
		check(between(p.WorkoutMinutesPerSession, minWorkoutMinutes, maxWorkoutMinutes),
			"workout minutes/session must be 20 to 120",
			slog.Int("workout_minutes_per_session", p.WorkoutMinutesPerSession))
	}

	if len(violations) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidProfile}, violations...)...)
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

